package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stokaro/anvil/cmd/generate"
	"github.com/stokaro/anvil/cmd/inspect"
	"github.com/stokaro/anvil/prompt"
)

var rootCmd = &cobra.Command{
	Use:   "anvil",
	Short: "Scaffold Laravel CRUD stacks from one field specification",
	Long: `Anvil generates coordinated Laravel and SPA artifacts for an entity from a
single field specification: migration, model, form requests, API controller,
resource, policy, feature test, route registrations and Vue or React
components.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(generate.NewMakeCommand())
	rootCmd.AddCommand(inspect.NewInspectCommand())

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
