package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/tui"
)

func tuiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"ui"},
		Short:   "Interactive diagram explorer",
		Long: `Explore the architecture in the terminal.

j/k move through components (or phases on the plan tab), enter selects,
m cycles the view mode, tab switches between simulation and plan,
arrows pan, +/- zoom, 0 refits and a analyzes the selected component.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			s, err := summarizerFactory(cmd)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.New(cmd.Context(), cat, s),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
}
