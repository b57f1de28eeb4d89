package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/ui"
)

func validateCmd(opts *options) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog for dangling and duplicate references",
		Long: `Validate the catalog given with --catalog, or the built-in one.

  sentinel validate --catalog ./catalog.yaml
  sentinel validate --dump > catalog.yaml   # start from the built-in catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Builtin()
			if opts.catalogPath != "" {
				var err error
				if cat, err = catalog.LoadFile(opts.catalogPath); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if dump {
				b, err := catalog.Marshal(cat)
				if err != nil {
					return err
				}
				_, err = w.Write(b)
				return err
			}

			if err := catalog.Validate(cat); err != nil {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(w, "  %s %s\n", ui.StatusIcon(false), line)
				}
				return domain.ErrInvalidCatalog
			}

			fmt.Fprintf(w, "  %s %s\n", ui.StatusIcon(true), describe(cat))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the catalog as YAML instead of validating it")
	return cmd
}

func describe(cat *domain.Catalog) string {
	return fmt.Sprintf("%d components, %d flows, %d threats, %d phases, modes: %s",
		len(cat.Components), len(cat.Flows), len(cat.Threats), len(cat.Phases),
		strings.Join(cat.Modes(), ", "))
}
