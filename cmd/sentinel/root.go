package main

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/ui"
)

var version = "1.0.0"

// options are the persistent flags shared by every command.
type options struct {
	catalogPath string
	logLevel    string

	flush func()
}

func (o *options) loadCatalog() (*domain.Catalog, error) {
	return catalog.Load(o.catalogPath)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sentinel",
		Short: "sentinel - multi-cloud security architecture explorer",
		Long: ui.Brand.Sprint(ui.Shield+" sentinel") + " - explore the security architecture from the terminal\n" +
			ui.Subtle.Sprint("Classify views, export diagrams, validate catalogs and analyze components"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flush, err := logging.Init(opts.logLevel, "development")
			if err != nil {
				return err
			}
			opts.flush = flush
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.flush != nil {
				opts.flush()
			}
		},
	}

	root.SetVersionTemplate("sentinel {{ .Version }}\n")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for diagnostics on stderr")

	root.AddCommand(
		snapshotCmd(opts),
		dotCmd(opts),
		analyzeCmd(opts),
		validateCmd(opts),
		tuiCmd(opts),
	)
	return root
}
