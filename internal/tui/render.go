package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/export"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/icons"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/layout"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/viewport"
)

const (
	dimColor  = lipgloss.Color("#334155")
	labelRune = 14
)

// renderDiagram draws the classified diagram through vp onto a cols x rows
// character grid.
func renderDiagram(cat *domain.Catalog, snap highlight.Snapshot, vp viewport.Viewport, cols, rows int) string {
	return drawDiagram(cat, snap, vp, cols, rows).String()
}

func drawDiagram(cat *domain.Catalog, snap highlight.Snapshot, vp viewport.Viewport, cols, rows int) *canvas {
	pal := newPalette()
	cv := newCanvas(cols, rows, pal)

	for _, r := range layout.Regions() {
		col, row := cellOf(vp.ToScreen(r.Point))
		style := pal.id("region:"+r.Provider, func() lipgloss.Style {
			return lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(export.ProviderColor(domain.CloudProvider(r.Provider))))
		})
		cv.text(col-len(r.Label)/2, row-1, r.Label, style)
	}

	for _, fs := range snap.VisibleFlows() {
		f, ok := cat.Flow(fs.ID)
		if !ok {
			continue
		}
		c0, r0 := cellOf(vp.ToScreen(layout.Position(f.From)))
		c1, r1 := cellOf(vp.ToScreen(layout.Position(f.To)))
		cv.line(c0, r0, c1, r1, flowRune(f.Type, fs), flowStyle(pal, f.Type, fs))
	}

	// Labels go down before any glyph so a long name never hides a
	// neighbour's marker.
	for _, c := range cat.Components {
		cs, _ := snap.Component(c.ID)
		col, row := cellOf(vp.ToScreen(layout.Position(c.ID)))
		cv.text(col+2, row, truncate(c.Name, labelRune), componentStyle(pal, c.Provider, cs))
	}
	for _, c := range cat.Components {
		cs, _ := snap.Component(c.ID)
		col, row := cellOf(vp.ToScreen(layout.Position(c.ID)))
		glyph := []rune(icons.Glyph(c.Icon))[0]
		if cs.ThreatAlert {
			glyph = '!'
		}
		cv.set(col, row, glyph, componentStyle(pal, c.Provider, cs))
	}
	return cv
}

func flowRune(t domain.FlowType, fs highlight.FlowState) rune {
	switch {
	case t == domain.FlowAttack:
		return '×'
	case fs.Pulsing:
		return '•'
	case t == domain.FlowLogging:
		return ':'
	default:
		return '·'
	}
}

func flowStyle(pal *palette, t domain.FlowType, fs highlight.FlowState) int {
	name := "flow:" + string(t) + ":" + string(fs.Emphasis)
	return pal.id(name, func() lipgloss.Style {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(export.FlowColor(t)))
		switch fs.Emphasis {
		case highlight.EmphasisFull:
			s = s.Bold(true)
		case highlight.EmphasisHeavilyDimmed:
			s = s.Foreground(dimColor).Faint(true)
		}
		return s
	})
}

func componentStyle(pal *palette, p domain.CloudProvider, cs highlight.ComponentState) int {
	name := "component:" + string(p)
	switch {
	case cs.ThreatAlert:
		name = "component:alert"
	case cs.Dimmed:
		name = "component:dimmed"
	}
	if cs.Selected {
		name += ":selected"
	} else if cs.Hovered {
		name += ":hovered"
	}
	if cs.Glowing {
		name += ":glow"
	}
	return pal.id(name, func() lipgloss.Style {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(export.ProviderColor(p)))
		switch {
		case cs.ThreatAlert:
			s = s.Foreground(lipgloss.Color(export.FlowColor(domain.FlowAttack))).Bold(true)
		case cs.Dimmed:
			s = s.Foreground(dimColor)
		}
		if cs.Selected {
			s = s.Reverse(true)
		} else if cs.Hovered {
			s = s.Underline(true)
		}
		if cs.Glowing {
			s = s.Bold(true)
		}
		return s
	})
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
