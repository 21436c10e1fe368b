package render

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynsim/internal/dataflow"
	"github.com/san-kum/dynsim/internal/nbody"
)

const liveHistoryCapacity = 300

var (
	liveHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	liveLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	liveValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	liveGraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	liveStatsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	liveHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// diagnosticsMsg wraps one pop off the live queue; open mirrors
// BoundedQueue.PopChecked's own closed-and-drained signal.
type diagnosticsMsg struct {
	snap nbody.Snapshot[nbody.Diagnostics]
	open bool
}

// LiveModel is a bubbletea program that renders a scrolling
// energy/virial sparkline from a diagnostics BoundedQueue, the Go
// rendering of the teacher's tick-driven live.Model generalized from
// "step the simulation every tick" to "read whatever the runner most
// recently pushed", since the runner (not the TUI) now owns the
// integration step loop.
type LiveModel struct {
	ctx     context.Context
	queue   *dataflow.BoundedQueue[nbody.Snapshot[nbody.Diagnostics]]
	history *History

	last    nbody.Diagnostics
	t       float64
	samples int
	done    bool
	err     error
}

// NewLiveModel wires a LiveModel to queue. ctx cancellation stops the
// read loop; the caller is expected to run the Runner concurrently and
// cancel ctx (or let EnableLive's queue close) once the run ends.
func NewLiveModel(ctx context.Context, queue *dataflow.BoundedQueue[nbody.Snapshot[nbody.Diagnostics]]) LiveModel {
	return LiveModel{
		ctx:     ctx,
		queue:   queue,
		history: NewHistory(liveHistoryCapacity),
	}
}

func (m LiveModel) Init() tea.Cmd {
	return m.waitForSample()
}

func (m LiveModel) waitForSample() tea.Cmd {
	return func() tea.Msg {
		snap, open, err := m.queue.PopChecked(m.ctx)
		if err != nil {
			return diagnosticsMsg{open: false}
		}
		return diagnosticsMsg{snap: snap, open: open}
	}
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case diagnosticsMsg:
		if !msg.open {
			m.done = true
			return m, tea.Quit
		}
		m.last = msg.snap.Data
		m.t = msg.snap.Time
		m.samples++
		m.history.Push(msg.snap.Data)
		return m, m.waitForSample()
	}
	return m, nil
}

func (m LiveModel) View() string {
	var s strings.Builder
	s.WriteString(liveHeaderStyle.Render("DYNSIM N-BODY — LIVE") + "\n")

	status := "RUNNING"
	if m.done {
		status = "FINISHED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if graph := m.history.EnergyPlot(60, 8); graph != "" {
		s.WriteString(liveGraphStyle.Render(graph) + "\n\n")
	}
	if graph := m.history.VirialPlot(60, 6); graph != "" {
		s.WriteString(liveGraphStyle.Render(graph) + "\n\n")
	}

	s.WriteString(liveLabelStyle.Render("time") + liveValueStyle.Render(fmt.Sprintf("%.4f", m.t)) + "\n")
	s.WriteString(liveLabelStyle.Render("samples") + liveValueStyle.Render(fmt.Sprintf("%d", m.samples)) + "\n")
	s.WriteString(liveLabelStyle.Render("E_kin") + liveValueStyle.Render(fmt.Sprintf("%.6e", m.last.EKin)) + "\n")
	s.WriteString(liveLabelStyle.Render("E_pot") + liveValueStyle.Render(fmt.Sprintf("%.6e", m.last.EPot)) + "\n")
	s.WriteString(liveLabelStyle.Render("|L_tot|") + liveValueStyle.Render(fmt.Sprintf("%.6e", m.last.LTot.Norm())) + "\n")
	s.WriteString(liveLabelStyle.Render("r_vir") + liveValueStyle.Render(fmt.Sprintf("%.4f", m.last.RVir)) + "\n")
	s.WriteString(liveLabelStyle.Render("ms_vel") + liveValueStyle.Render(fmt.Sprintf("%.4f", m.last.MsVel)) + "\n")
	s.WriteString(liveLabelStyle.Render("t_cr") + liveValueStyle.Render(fmt.Sprintf("%.4f", m.last.TCr)) + "\n")

	s.WriteString(liveHelpStyle.Render("q: quit"))
	return liveStatsStyle.Render(s.String())
}
