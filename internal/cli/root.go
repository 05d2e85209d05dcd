// Package cli implements the planner command line front end.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// NewRootCommand builds the planner command tree.
func NewRootCommand(version string) *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:   "planner",
		Short: "Generate a personalized wellness plan",
		Long: `planner fills in the wellness plan form, streams the generated plan from
the plan API and lets you copy or download the result.

Examples:
  planner generate
  planner generate --profile me.yaml --language Spanish --copy
  planner options
  planner export plan.html --format text`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if env := os.Getenv("PLANNER_SERVER"); env != "" {
		server = env
	} else {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&server, "server", server, "Base URL of the plan API (env PLANNER_SERVER)")

	serverURL := func() string { return server }
	root.AddCommand(newGenerateCommand(serverURL))
	root.AddCommand(newOptionsCommand(serverURL))
	root.AddCommand(newExportCommand())
	return root
}

// Execute is the entry point called from main.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}
