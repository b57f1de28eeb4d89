package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/sentinel-backend/config"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/ui"
)

// summarizerFactory builds the analysis provider. Tests swap it for a mock.
var summarizerFactory = func(cmd *cobra.Command) (summarize.Summarizer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return summarize.New(cmd.Context(), summarize.Config{
		APIKey:    cfg.Summarizer.APIKey,
		Provider:  cfg.Summarizer.Provider,
		Model:     cfg.Summarizer.Model,
		BaseURL:   cfg.Summarizer.BaseURL,
		UseADC:    cfg.Summarizer.UseADC,
		MockDelay: cfg.Summarizer.MockDelay,
		RateLimit: cfg.Summarizer.RateLimit,
		Burst:     cfg.Summarizer.Burst,
		Timeout:   cfg.Summarizer.Timeout,
	}, metrics.NewRegistry())
}

func analyzeCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <component-id>",
		Short: "Run the analysis provider for one component",
		Long: `Ask the configured provider for a strategic analysis of a component.

The provider comes from the same environment as the API server
(API_KEY, SUMMARIZER_PROVIDER, ...). Without a credential a mock
analysis is returned.

  sentinel analyze aws-waf
  sentinel analyze azure-db --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			comp, ok := cat.Component(args[0])
			if !ok {
				return fmt.Errorf("component %q: %w", args[0], domain.ErrComponentNotFound)
			}

			s, err := summarizerFactory(cmd)
			if err != nil {
				return err
			}
			a, err := s.Summarize(cmd.Context(), comp)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", comp.ID, err)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"component_id": comp.ID,
					"provider":     s.Name(),
					"analysis":     a,
				})
			}
			printAnalysis(w, comp, s.Name(), a)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func printAnalysis(w io.Writer, c domain.Component, provider string, a summarize.Analysis) {
	ui.Banner(w, c.Name+" ("+provider+")")
	if summarize.IsUnavailable(a) {
		ui.Warn.Fprintln(w, "  "+a.Summary)
		ui.Subtle.Fprintln(w, "  "+a.Importance)
		return
	}
	fmt.Fprintln(w, "  "+a.Summary)
	fmt.Fprintln(w)
	ui.Info.Fprintln(w, "  Why it matters")
	fmt.Fprintln(w, "  "+a.Importance)
	fmt.Fprintln(w)
	ui.Info.Fprintln(w, "  Business value")
	fmt.Fprintln(w, "  "+a.BusinessValue)
	fmt.Fprintln(w)
	for _, d := range a.TechnicalDetails {
		fmt.Fprintf(w, "  %s %s\n", ui.Good.Sprint("•"), d)
	}
}
