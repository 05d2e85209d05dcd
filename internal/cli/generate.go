package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/planner"
	"github.com/pageza/nutriplan/backend/internal/plantext"
	"github.com/pageza/nutriplan/backend/internal/ui"
)

type generateOptions struct {
	profile  string
	language string
	vibe     string
	copy     bool
	download string
}

func newGenerateCommand(serverURL func() string) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Stream a new wellness plan",
		Long: `Generate builds the prompt from your profile, streams the plan as it is
written and, once it is complete, optionally copies it as markdown or saves
it as plain text.

Press Ctrl+C to stop a plan that is still streaming.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("download") && opts.download == "" {
				opts.download = plantext.ExportFilename
			}
			return runGenerate(cmd.Context(), planner.NewClient(serverURL(), nil), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "YAML file with your profile (defaults fill the rest)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", options.DefaultLanguage, "Language of the plan")
	cmd.Flags().StringVar(&opts.vibe, "vibe", options.DefaultVibe, "What you want out of the plan")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the finished plan to the clipboard as markdown")
	cmd.Flags().StringVarP(&opts.download, "download", "d", "", "Save the finished plan as plain text to this file")
	cmd.Flags().Lookup("download").NoOptDefVal = plantext.ExportFilename

	return cmd
}

func runGenerate(ctx context.Context, gen planner.Generator, opts generateOptions) error {
	ctrl := planner.NewController(gen)
	defer ctrl.Close()

	if opts.profile != "" {
		profile, err := LoadProfile(opts.profile)
		if err != nil {
			return err
		}
		ctrl.SetProfile(profile)
	}
	selectChoice(ctrl.Language(), opts.language, ctrl.SelectLanguage)
	selectChoice(ctrl.Vibe(), opts.vibe, ctrl.SelectVibe)
	warnUnknownChoices(opts)

	renderer := ui.NewRenderer(os.Stdout, os.Stderr, ui.IsTerminal(os.Stdout))
	unsubscribe := ctrl.Subscribe(renderer.Render)
	defer unsubscribe()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := ctrl.Submit(ctx); err != nil {
		return err
	}
	if err := ctrl.Wait(sigCtx); err != nil {
		ctrl.Cancel()
		renderer.Finish()
		ui.Info(os.Stderr, "Stopped. Keeping what was generated so far.")
	}
	renderer.Finish()

	snap := ctrl.Snapshot()
	if snap.Notice.Kind == planner.NoticeError {
		return snap.Notice.Err
	}

	if opts.copy {
		md, err := ctrl.Markdown()
		if err != nil {
			return err
		}
		if err := copyToClipboard(md); err != nil {
			return err
		}
		ui.Success(os.Stderr, "Plan copied to clipboard")
	}

	if opts.download != "" {
		text, err := ctrl.PlainText()
		if err != nil {
			return err
		}
		if err := writeDownload(opts.download, text); err != nil {
			return err
		}
		ui.Success(os.Stderr, fmt.Sprintf("Plan saved to %s", opts.download))
	}
	return nil
}

// selectChoice sets a dropdown to want. The dropdown toggles, so picking the
// value it already holds would clear it.
func selectChoice(current, want string, pick func(string)) {
	if current != want {
		pick(want)
	}
}

func warnUnknownChoices(opts generateOptions) {
	catalog, err := options.LoadCatalog()
	if err != nil {
		return
	}
	if _, ok := options.Find(catalog.Languages, opts.language); !ok && opts.language != "" {
		ui.Info(os.Stderr, fmt.Sprintf("%q is not a listed language; asking for it anyway.", opts.language))
	}
	if _, ok := options.Find(catalog.Vibes, opts.vibe); !ok && opts.vibe != "" {
		ui.Info(os.Stderr, fmt.Sprintf("%q is not a listed vibe; using it as written.", opts.vibe))
	}
}
