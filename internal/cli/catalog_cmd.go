package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/erca/internal/cli/formatter"
	"github.com/alexanderramin/erca/internal/textnorm"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage curriculum sources",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogListCmd(app),
		newCatalogUseCmd(app),
		newCatalogRemoveCmd(app),
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	var name string
	var activate bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a curriculum document (JSON or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalogs.Import(cmd.Context(), args[0], name, activate)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportReport(res.Source.Name, res.Report, res.Activated))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Source name (defaults to the file name)")
	cmd.Flags().BoolVar(&activate, "activate", false, "Serve this catalog right away")
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List imported curriculum sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := app.Catalogs.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSourceList(sources))
			return nil
		},
	}
}

func newCatalogUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Serve an imported curriculum source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalogs.Activate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now serving %s (%d skills)\n", formatter.Bold(res.SourceName), res.Report.Skills)
			return nil
		},
	}
}

func newCatalogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete an imported curriculum source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalogs.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [SUBLEVEL...]",
		Short: "Summarize the served catalog or list one sub-level",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprint(out, formatter.FormatCatalogSummary(app.Plans.Overview()))
				return nil
			}
			key := textnorm.Key(strings.Join(args, " "))
			if !app.Catalogs.Current().Has(key) {
				return fmt.Errorf("sub-level %q is not in the catalog", key)
			}
			objectives := app.Catalogs.Current().Objectives(key)
			fmt.Fprint(out, formatter.FormatSubLevel(objectives, app.Plans.Skills(key)))
			return nil
		},
	}
}
