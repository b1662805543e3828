package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sweepmind/internal/game"
	"sweepmind/internal/types"
)

// autoplayInterval paces the agent when it runs unattended.
const autoplayInterval = 150 * time.Millisecond

type tickMsg time.Time

// PlayModel drives one interactive game session.
type PlayModel struct {
	session  *game.Session
	styles   Styles
	panel    viewport.Model
	log      []string
	autoplay bool
	err      error
	width    int
	height   int
}

// NewPlayModel creates the play page over a fresh session.
func NewPlayModel(session *game.Session) PlayModel {
	return PlayModel{
		session: session,
		styles:  DefaultStyles(),
		panel:   viewport.New(40, 16),
	}
}

// Init implements tea.Model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panel.Width = 44
		m.panel.Height = msg.Height - 8
		if m.panel.Height < 4 {
			m.panel.Height = 4
		}
		m.refreshPanel()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter", "n":
			m.step()
			return m, nil
		case "a":
			m.autoplay = !m.autoplay
			if m.autoplay && !m.session.Done() && m.err == nil {
				return m, tick()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.panel, cmd = m.panel.Update(msg)
			return m, cmd
		}

	case tickMsg:
		if !m.autoplay || m.session.Done() || m.err != nil {
			return m, nil
		}
		m.step()
		if m.session.Done() || m.err != nil {
			m.autoplay = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m *PlayModel) step() {
	if m.session.Done() || m.err != nil {
		return
	}
	step, err := m.session.Step()
	if err != nil {
		m.err = err
		return
	}
	if step.Outcome == game.OutcomeLost {
		m.log = append(m.log, fmt.Sprintf("%s move %s -> mine", step.Kind, step.Cell))
	} else if step.Outcome == game.OutcomeStalled {
		m.log = append(m.log, "no move available")
	} else {
		m.log = append(m.log, fmt.Sprintf("%s move %s = %d", step.Kind, step.Cell, step.Count))
	}
	m.refreshPanel()
}

func (m *PlayModel) refreshPanel() {
	kb := m.session.Knowledge()
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("Knowledge"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "safe: %d  mines: %d  played: %d\n\n",
		len(kb.Safes()), len(kb.Mines()), len(kb.Moves()))

	sentences := kb.Sentences()
	fmt.Fprintf(&sb, "live sentences (%d):\n", len(sentences))
	for _, s := range sentences {
		sb.WriteString("  " + s.String() + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Header.Render("Moves"))
	sb.WriteString("\n")
	start := 0
	if len(m.log) > 12 {
		start = len(m.log) - 12
	}
	for _, line := range m.log[start:] {
		sb.WriteString(line + "\n")
	}

	m.panel.SetContent(sb.String())
	m.panel.GotoBottom()
}

// View implements tea.Model.
func (m PlayModel) View() string {
	boardView := m.styles.Board.Render(m.renderBoard())
	panelView := m.styles.Panel.Render(m.panel.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, boardView, " ", panelView)

	status := m.statusLine()
	help := m.styles.Help.Render("space/enter: step · a: autoplay · q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, status, help)
}

func (m PlayModel) statusLine() string {
	if m.err != nil {
		return m.styles.Mine.Render(fmt.Sprintf("engine error: %v", m.err))
	}
	switch m.session.Outcome() {
	case game.OutcomeWon:
		return m.styles.Safe.Render("all mines flagged - won")
	case game.OutcomeLost:
		return m.styles.Mine.Render("probed a mine - lost")
	case game.OutcomeStalled:
		return m.styles.Status.Render("no move available")
	default:
		if m.autoplay {
			return m.styles.Status.Render("autoplaying...")
		}
		return m.styles.Status.Render("ready")
	}
}

// renderBoard draws the grid from the agent's point of view: observed counts,
// flagged mines, proven safes, and unknowns. Ground truth mines show only
// after the game ends.
func (m PlayModel) renderBoard() string {
	b := m.session.Board()
	kb := m.session.Knowledge()
	seen := m.session.Observations()
	safes := kb.Safes()
	mines := kb.Mines()
	done := m.session.Done()

	var sb strings.Builder
	for i := 0; i < b.Height(); i++ {
		for j := 0; j < b.Width(); j++ {
			c := types.Cell{Row: i, Col: j}
			count, revealed := seen[c]
			var cell string
			switch {
			case done && b.IsMine(c) && !mines.Has(c):
				cell = m.styles.Mine.Render("*")
			case mines.Has(c):
				cell = m.styles.Mine.Render("⚑")
			case revealed:
				cell = m.styles.Revealed.Render(fmt.Sprintf("%d", count))
			case safes.Has(c):
				cell = m.styles.Safe.Render("·")
			default:
				cell = m.styles.Unknown.Render("▒")
			}
			sb.WriteString(cell)
			if j < b.Width()-1 {
				sb.WriteString(" ")
			}
		}
		if i < b.Height()-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
