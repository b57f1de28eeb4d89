package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/export"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/ui"
)

// viewFlags select the focus state for snapshot and dot.
type viewFlags struct {
	mode     string
	selected string
	hovered  string
	phase    string
}

func (f *viewFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", domain.ModeDefault, "View mode (default, dataflow, threat-*)")
	cmd.Flags().StringVar(&f.selected, "selected", "", "Selected component id")
	cmd.Flags().StringVar(&f.hovered, "hovered", "", "Hovered component id")
	cmd.Flags().StringVar(&f.phase, "phase", "", "Hovered rollout phase id (switches to the plan tab and default mode)")
}

func (f *viewFlags) state() shell.State {
	return shell.StateFor(f.mode, f.selected, f.hovered, f.phase)
}

type snapshotOutput struct {
	State    shell.State        `json:"state"`
	Snapshot highlight.Snapshot `json:"snapshot"`
	Counts   highlight.Counts   `json:"counts"`
	Banner   string             `json:"banner,omitempty"`
}

func snapshotCmd(opts *options) *cobra.Command {
	var (
		vf     viewFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Classify the diagram for a view state",
		Long: `Print how every component and flow is rendered for a view state.

  sentinel snapshot --mode threat-ddos
  sentinel snapshot --selected aws-waf --json
  sentinel snapshot --phase phase-2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			st := vf.state()
			snap := highlight.Classify(cat, st.HighlightInput(cat))
			out := snapshotOutput{
				State:    st,
				Snapshot: snap,
				Counts:   snap.Counts(),
				Banner:   st.HoveredPhaseTitle(cat),
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			printSnapshot(w, cat, out)
			return nil
		},
	}
	vf.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func printSnapshot(w io.Writer, cat *domain.Catalog, out snapshotOutput) {
	snap := out.Snapshot
	ui.Banner(w, fmt.Sprintf("mode %s, regime %s", snap.Mode, snap.Regime))
	if out.Banner != "" {
		ui.Info.Fprintf(w, "  Visualizing: %s\n\n", out.Banner)
	}

	rows := make([][]string, 0, len(snap.Components))
	for _, cs := range snap.Components {
		c, _ := cat.Component(cs.ID)
		rows = append(rows, []string{
			cs.ID,
			c.Name,
			ui.Flag(cs.Selected, "selected") + ui.Flag(cs.Hovered, "hovered"),
			ui.Flag(cs.Dimmed, "dimmed"),
			ui.Flag(cs.ThreatAlert, "ALERT"),
			fmt.Sprintf("%.1f", cs.Opacity),
		})
	}
	ui.Table(w, []string{"COMPONENT", "NAME", "FOCUS", "DIMMED", "THREAT", "OPACITY"}, rows)
	fmt.Fprintln(w)

	rows = rows[:0]
	for _, fs := range snap.VisibleFlows() {
		f, _ := cat.Flow(fs.ID)
		rows = append(rows, []string{
			fs.ID,
			f.From + " -> " + f.To,
			string(f.Type),
			string(fs.Emphasis),
			ui.Flag(fs.Pulsing, "pulse"),
		})
	}
	ui.Table(w, []string{"FLOW", "ROUTE", "TYPE", "EMPHASIS", "ANIM"}, rows)

	c := out.Counts
	fmt.Fprintln(w)
	ui.Subtle.Fprintf(w, "  %d visible flows, %d dimmed components, %d threat alerts\n",
		c.VisibleFlows, c.DimmedComponents, c.ThreatAlerts)
}

func dotCmd(opts *options) *cobra.Command {
	var (
		vf     viewFlags
		title  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the diagram as Graphviz DOT",
		Long: `Render the classified diagram as a DOT digraph.

  sentinel dot --mode threat-sqli | dot -Tsvg > sqli.svg
  sentinel dot --phase phase-1 -o plan.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			st := vf.state()
			if title == "" {
				title = "Sentinel - " + st.Mode
				if banner := st.HoveredPhaseTitle(cat); banner != "" {
					title = "Visualizing: " + banner
				}
			}
			dot := export.ToDOT(cat, highlight.Classify(cat, st.HighlightInput(cat)), title)

			if output == "" || output == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), dot)
				return err
			}
			if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			ui.Good.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}
	vf.bind(cmd)
	cmd.Flags().StringVar(&title, "title", "", "Graph title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
