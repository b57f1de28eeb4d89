// Package tui is a terminal explorer for the security architecture. It
// drives the same shell, viewport and insight panel as the HTTP sessions,
// rendering the diagram onto a character grid.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/insight"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/shell"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/viewport"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

const (
	sidebarWidth  = 40
	defaultWidth  = 120
	defaultHeight = 40

	// panStep is how far one arrow press drags the diagram, in cells.
	panStep = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#38BDF8"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8FAFC"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0F172A")).Background(lipgloss.Color("#38BDF8")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#334155")).
			PaddingLeft(1)
)

// analysisMsg carries a summarizer result back into the update loop.
type analysisMsg struct {
	gen      uint64
	analysis summarize.Analysis
	err      error
}

// Model is the bubbletea model of the explorer.
type Model struct {
	ctx        context.Context
	shell      *shell.Shell
	summarizer summarize.Summarizer

	vp    viewport.Viewport
	panel insight.Panel

	// cursor indexes the component list, phaseCursor the phase list.
	cursor      int
	phaseCursor int

	width, height int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// New builds a model over cat. ctx bounds every analysis request.
func New(ctx context.Context, cat *domain.Catalog, s summarize.Summarizer) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		shell:      shell.New(cat),
		summarizer: s,
		vp:         viewport.New(),
		panel:      insight.NewPanel(),
		keys:       keys,
		help:       help.New(),
		spinner:    sp,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case analysisMsg:
		if msg.err != nil {
			m.panel.Fail(msg.gen, msg.err)
		} else {
			m.panel.Complete(msg.gen, msg.analysis)
		}
		return m, nil

	case spinner.TickMsg:
		if m.panel.Status != insight.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.shell.State()
	cat := m.shell.Catalog()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Up):
		step := 1
		if key.Matches(msg, m.keys.Up) {
			step = -1
		}
		if st.Tab == shell.TabPlan {
			if len(cat.Phases) > 0 {
				m.phaseCursor = wrap(m.phaseCursor+step, len(cat.Phases))
				m.shell.HoverPhase(cat.Phases[m.phaseCursor].ID)
			}
		} else if len(cat.Components) > 0 {
			m.cursor = wrap(m.cursor+step, len(cat.Components))
			m.shell.HoverComponent(cat.Components[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Select):
		if st.Tab != shell.TabSimulation || len(cat.Components) == 0 {
			break
		}
		id := cat.Components[m.cursor].ID
		if err := m.shell.SelectComponent(id); err == nil && m.panel.ComponentID != id {
			m.panel.Reset(id)
		}

	case key.Matches(msg, m.keys.Close):
		m.shell.ClearSelection()
		m.panel.Reset("")

	case key.Matches(msg, m.keys.Mode):
		if st.Tab != shell.TabSimulation {
			break
		}
		m.shell.SetMode(nextMode(cat.Modes(), st.Mode))

	case key.Matches(msg, m.keys.Tab):
		if st.Tab == shell.TabPlan {
			// the phase highlight would otherwise outlive the tab
			m.shell.HoverPhase("")
			m.shell.SetTab(shell.TabSimulation)
		} else {
			m.shell.SetTab(shell.TabPlan)
		}

	case key.Matches(msg, m.keys.PanLeft):
		m.drag(-panStep*CellWidth, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.drag(panStep*CellWidth, 0)
	case key.Matches(msg, m.keys.PanUp):
		m.drag(0, -panStep*CellHeight)
	case key.Matches(msg, m.keys.PanDown):
		m.drag(0, panStep*CellHeight)

	case key.Matches(msg, m.keys.ZoomIn):
		m.vp.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.vp.ZoomOut()
	case key.Matches(msg, m.keys.ResetView):
		cols, rows := m.canvasSize()
		m.vp.Reset(float64(cols)*CellWidth, float64(rows)*CellHeight)

	case key.Matches(msg, m.keys.Analyze):
		comp, ok := m.shell.SelectedComponent()
		if !ok {
			break
		}
		gen, err := m.panel.Begin()
		if err != nil {
			break
		}
		return m, tea.Batch(m.spinner.Tick, m.analyze(gen, comp))
	}
	return m, nil
}

// analyze runs the summarizer off the update loop.
func (m Model) analyze(gen uint64, c domain.Component) tea.Cmd {
	ctx, s := m.ctx, m.summarizer
	return func() tea.Msg {
		a, err := s.Summarize(ctx, c)
		return analysisMsg{gen: gen, analysis: a, err: err}
	}
}

// drag pans the diagram as a single pointer drag from the origin.
func (m *Model) drag(dx, dy float64) {
	m.vp.BeginDrag(0, 0)
	m.vp.DragTo(dx, dy)
	m.vp.EndDrag()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols, rows := m.canvasSize()
	m.vp.Reset(float64(cols)*CellWidth, float64(rows)*CellHeight)
}

func (m Model) canvasSize() (cols, rows int) {
	cols = m.width - sidebarWidth - 2
	rows = m.height - 3
	return max(cols, 0), max(rows, 0)
}

func (m Model) View() string {
	cat := m.shell.Catalog()
	st := m.shell.State()
	snap := m.shell.Snapshot()
	cols, rows := m.canvasSize()

	header := titleStyle.Render("Sentinel") + subtleStyle.Render(fmt.Sprintf("  %s · mode %s · %s · zoom %.0f%%",
		st.Tab, st.Mode, snap.Regime, m.vp.Scale*100))
	if title := st.HoveredPhaseTitle(cat); title != "" {
		header += "  " + bannerStyle.Render("Visualizing: "+title)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderDiagram(cat, snap, m.vp, cols, rows),
		sidebarStyle.Height(rows).Render(m.sidebar()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.help.View(m.keys))
}

func (m Model) sidebar() string {
	cat := m.shell.Catalog()
	st := m.shell.State()
	var b strings.Builder

	if st.Tab == shell.TabPlan {
		b.WriteString(titleStyle.Render("Rollout plan") + "\n")
		for i, p := range cat.Phases {
			line := fmt.Sprintf("%s  %s", p.Phase, p.Title)
			b.WriteString(listLine(i == m.phaseCursor, line) + "\n")
		}
		return b.String()
	}

	if d, ok := insight.NewDetail(cat, st.SelectedID); ok {
		b.WriteString(titleStyle.Render(d.Glyph+" "+d.Name) + "\n")
		b.WriteString(subtleStyle.Render(string(d.Provider)+" · "+string(d.Domain)) + "\n\n")
		b.WriteString(d.Description + "\n\n")
		if len(d.Compliance) > 0 {
			b.WriteString(subtleStyle.Render("compliance: "+strings.Join(d.Compliance, ", ")) + "\n")
		}
		for _, f := range d.Flows {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("%s %s %s", f.Direction, f.Peer, f.Type)) + "\n")
		}
		b.WriteString("\n" + m.insightView())
		return b.String()
	}

	b.WriteString(titleStyle.Render("Components") + "\n")
	for i, c := range cat.Components {
		b.WriteString(listLine(i == m.cursor, truncate(c.Name, sidebarWidth-4)) + "\n")
	}
	return b.String()
}

func (m Model) insightView() string {
	switch m.panel.Status {
	case insight.StatusLoading:
		return m.spinner.View() + " analyzing with " + m.summarizer.Name()
	case insight.StatusReady:
		a := m.panel.Analysis
		var b strings.Builder
		b.WriteString(a.Summary + "\n\n")
		b.WriteString(subtleStyle.Render("Why it matters") + "\n" + a.Importance + "\n\n")
		b.WriteString(subtleStyle.Render("Business value") + "\n" + a.BusinessValue + "\n")
		for _, d := range a.TechnicalDetails {
			b.WriteString("• " + d + "\n")
		}
		return b.String()
	case insight.StatusFailed:
		return errorStyle.Render(m.panel.Error)
	default:
		return subtleStyle.Render("press a to analyze")
	}
}

func listLine(active bool, s string) string {
	if active {
		return cursorStyle.Render("> " + s)
	}
	return "  " + s
}

// nextMode returns the mode after cur, wrapping. Unknown modes restart the
// cycle.
func nextMode(modes []string, cur string) string {
	for i, md := range modes {
		if md == cur {
			return modes[(i+1)%len(modes)]
		}
	}
	if len(modes) == 0 {
		return domain.ModeDefault
	}
	return modes[0]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
