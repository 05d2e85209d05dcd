package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/planner"
	"github.com/pageza/nutriplan/backend/internal/types"
)

func newOptionsCommand(serverURL func() string) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the languages and vibes you can pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp *types.OptionsResponse
			if local {
				catalog, err := options.LoadCatalog()
				if err != nil {
					return err
				}
				resp = &types.OptionsResponse{
					Languages: catalog.Languages,
					Vibes:     catalog.Vibes,
					Defaults:  types.OptionDefaults{Language: options.DefaultLanguage, Vibe: options.DefaultVibe},
				}
			} else {
				var err error
				resp, err = planner.NewClient(serverURL(), nil).Options(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to fetch options: %w", err)
				}
			}
			printOptions(os.Stdout, resp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "Use the built-in catalog instead of asking the server")
	return cmd
}

func printOptions(w io.Writer, resp *types.OptionsResponse) {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(w, "Languages")
	printChoices(w, resp.Languages, resp.Defaults.Language)
	fmt.Fprintln(w)
	heading.Fprintln(w, "Vibes")
	printChoices(w, resp.Vibes, resp.Defaults.Vibe)
}

func printChoices(w io.Writer, choices []options.Choice, selected string) {
	for _, c := range choices {
		marker := " "
		if c.Value == selected {
			marker = "*"
		}
		if c.Label != c.Value {
			fmt.Fprintf(w, "  %s %s (%s)\n", marker, c.Label, c.Value)
		} else {
			fmt.Fprintf(w, "  %s %s\n", marker, c.Label)
		}
	}
}
