package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/nutriplan/backend/internal/plantext"
	"github.com/pageza/nutriplan/backend/internal/ui"
)

func newExportCommand() *cobra.Command {
	var (
		format string
		output string
		toClip bool
	)

	cmd := &cobra.Command{
		Use:   "export <plan.html>",
		Short: "Convert a saved plan to markdown or plain text",
		Long: `Export converts a plan saved as HTML.

  --format markdown  prints headings and list items in markdown form
  --format text      strips every tag and saves the result as plan.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read plan: %w", err)
			}
			html := plantext.StripFences(string(data))

			var text string
			switch format {
			case "markdown":
				text = plantext.ToMarkdownish(html)
			case "text":
				text = plantext.ToPlainText(html)
				if output == "" {
					output = plantext.ExportFilename
				}
			default:
				return fmt.Errorf("unsupported export format %q", format)
			}

			if toClip {
				if err := copyToClipboard(text); err != nil {
					return err
				}
				ui.Success(cmd.ErrOrStderr(), "Plan copied to clipboard")
			}
			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err := writeDownload(output, text); err != nil {
				return err
			}
			ui.Success(cmd.ErrOrStderr(), fmt.Sprintf("Plan saved to %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "markdown or text")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write instead of stdout")
	cmd.Flags().BoolVarP(&toClip, "copy", "c", false, "Also copy the result to the clipboard")
	return cmd
}
