package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "erca" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "erca",
		Short:         "ERCA lesson planner for the Ecuador national curriculum",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogCmd(app),
		newResolveCmd(app),
		newSkillsCmd(app),
		newMatchCmd(app),
		newAllocateCmd(app),
		newPlanCmd(app),
		newBrowseCmd(app),
		newServeCmd(app),
	)

	return root
}
