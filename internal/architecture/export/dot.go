// Package export renders a classified diagram as GraphViz DOT.
package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
)

// ToDOT renders the components and the visible flows of snap. Nodes are
// pinned to their layout positions (y flipped, since GraphViz grows
// upwards), so the output is meant for neato -n or fdp.
func ToDOT(cat *domain.Catalog, snap highlight.Snapshot, title string) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString(`  graph [bgcolor="#0f172a", fontname="Helvetica", fontcolor="#e2e8f0", splines=curved];` + "\n")
	b.WriteString(`  node [shape=circle, style=filled, fillcolor="#1e293b", fontname="Helvetica", fontsize=10, fontcolor="#e2e8f0"];` + "\n")
	b.WriteString(`  edge [fontname="Helvetica", fontsize=8, fontcolor="#94a3b8"];` + "\n")
	if title != "" {
		fmt.Fprintf(&b, "  labelloc=\"t\"; label=%q;\n", title)
	}

	_, hi := layout.Bounds()
	for _, r := range layout.Regions() {
		fmt.Fprintf(&b, "  %q [shape=plaintext, style=\"\", label=%q, fontcolor=\"%s4d\", pos=\"%.0f,%.0f!\"];\n",
			"region:"+r.Label, r.Label, ProviderColor(domain.CloudProvider(r.Provider)), r.X, hi.Y-r.Y)
	}

	for _, c := range cat.Components {
		state, _ := snap.Component(c.ID)
		p := layout.Position(c.ID)
		color := ProviderColor(c.Provider)

		penwidth := 2
		if state.Selected {
			penwidth = 3
		}
		attrs := []string{
			fmt.Sprintf("label=%q", c.Name),
			fmt.Sprintf("pos=\"%.0f,%.0f!\"", p.X, hi.Y-p.Y),
			fmt.Sprintf("color=\"%s%s\"", color, alpha(state.Opacity)),
			fmt.Sprintf("fontcolor=\"#e2e8f0%s\"", alpha(state.Opacity)),
			fmt.Sprintf("penwidth=%d", penwidth),
			fmt.Sprintf("tooltip=%q", string(c.Provider)+" / "+string(c.Domain)),
		}
		if state.ThreatAlert {
			attrs = append(attrs, `xlabel="!"`, `fillcolor="#7f1d1d"`)
		}
		if state.Glowing {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(&b, "  %q [%s];\n", c.ID, strings.Join(attrs, ", "))
	}

	for i, f := range cat.Flows {
		fs := snap.Flows[i]
		if !fs.Eligible {
			continue
		}
		style := "solid"
		switch {
		case snap.Mode == domain.ModeDataflow:
			style = "dashed"
		case f.Type == domain.FlowLogging:
			style = "dotted"
		}
		width := 1.5
		if f.Type == domain.FlowAttack {
			width = 2
		}
		fmt.Fprintf(&b, "  %q -> %q [label=%q, color=\"%s%s\", style=%s, penwidth=%.1f, tooltip=%q];\n",
			f.From, f.To, f.Label, FlowColor(f.Type), alpha(fs.Opacity), style, width, f.Description)
	}

	b.WriteString("}\n")
	return b.String()
}
