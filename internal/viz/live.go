// Package viz renders a live terminal dashboard for a running
// simulation: temperature and energy sparklines plus the current
// interaction list. It consumes engine snapshots through a channel and
// never touches simulation state directly.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/moldyn/internal/engine"
)

const maxPoints = 120

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

type snapshotMsg engine.Snapshot

type streamClosedMsg struct{}

// Model is the bubbletea model for the live view.
type Model struct {
	snaps  <-chan engine.Snapshot
	latest engine.Snapshot
	temps  []float64
	totals []float64
	ticks  int
}

func NewModel(snaps <-chan engine.Snapshot) Model {
	return Model{snaps: snaps}
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.snaps
		if !ok {
			return streamClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case streamClosedMsg:
		return m, tea.Quit
	case snapshotMsg:
		m.latest = engine.Snapshot(msg)
		m.ticks++
		m.temps = appendCapped(m.temps, m.latest.Physics.Temperature)
		m.totals = appendCapped(m.totals, m.latest.Physics.Total)
		return m, m.wait()
	}
	return m, nil
}

func appendCapped(series []float64, v float64) []float64 {
	series = append(series, v)
	if len(series) > maxPoints {
		series = series[1:]
	}
	return series
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("moldyn — %s", m.latest.MoleculeID)))
	b.WriteString("\n\n")

	p := m.latest.Physics
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("t:"), valueStyle.Render(fmt.Sprintf("%.1f fs", m.latest.Time)),
		labelStyle.Render("T:"), valueStyle.Render(fmt.Sprintf("%.1f K", p.Temperature)),
		labelStyle.Render("E:"), valueStyle.Render(fmt.Sprintf("%.3f kJ/mol", p.Total))))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		labelStyle.Render("KE:"), valueStyle.Render(fmt.Sprintf("%.3f", p.Kinetic)),
		labelStyle.Render("PE:"), valueStyle.Render(fmt.Sprintf("%.3f", p.Potential))))

	if len(m.temps) > 1 {
		b.WriteString(asciigraph.Plot(m.temps,
			asciigraph.Height(8), asciigraph.Width(70),
			asciigraph.Caption("temperature (K)")))
		b.WriteString("\n\n")
	}
	if len(m.totals) > 1 {
		b.WriteString(asciigraph.Plot(m.totals,
			asciigraph.Height(6), asciigraph.Width(70),
			asciigraph.Caption("total energy (kJ/mol)")))
		b.WriteString("\n\n")
	}

	if len(m.latest.Interactions) > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("interactions (%d):", len(m.latest.Interactions))))
		b.WriteString("\n")
		for i, s := range m.latest.Interactions {
			if i >= 6 {
				b.WriteString(footerStyle.Render(fmt.Sprintf("  … %d more\n", len(m.latest.Interactions)-i)))
				break
			}
			b.WriteString(fmt.Sprintf("  %-14s %s–%s  %.2f Å  strength %.2f\n",
				s.Kind, s.AtomA, s.AtomB, s.Distance, s.Strength))
		}
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("q to quit"))
	return b.String()
}

// Run drives the live view until the snapshot channel closes or the
// user quits.
func Run(snaps <-chan engine.Snapshot) error {
	_, err := tea.NewProgram(NewModel(snaps)).Run()
	return err
}
