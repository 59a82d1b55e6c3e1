package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyland/internal/storage"
)

// maxHistoryRuns is how many runs the history view loads.
const maxHistoryRuns = 100

// HistoryModel shows the runs finished in this process, newest first.
type HistoryModel struct {
	store  *storage.Store
	runs   []storage.Run
	best   int
	table  table.Model
	width  int
	height int
	err    error
}

// NewHistoryModel creates a history view backed by store. A nil store shows an empty table.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a table sized to the current view.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Bonuses", Width: 8},
		{Title: "Lost", Width: 5},
		{Title: "High", Width: 8},
		{Title: "Ended", Width: 10},
	}

	height := m.height - 8 // Title, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs from the store.
func (m *HistoryModel) Refresh() {
	m.err = nil
	m.runs = nil
	m.best = 0
	if m.store != nil {
		runs, err := m.store.RecentRuns(maxHistoryRuns)
		if err != nil {
			m.err = err
		} else {
			m.runs = runs
		}
		if best, ok, err := m.store.Best(); err == nil && ok {
			m.best = best.Score
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Bonuses),
			fmt.Sprintf("%d", r.LivesLost),
			fmt.Sprintf("%d", r.HighScore),
			r.EndedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SetSize rebuilds the table for a new terminal size.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
}

// Update passes navigation keys to the table.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Runs returns the loaded runs.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// View renders the history table with the given help line.
func (m HistoryModel) View(helpLine string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN HISTORY"
	if len(m.runs) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %d runs, best %d", len(m.runs), m.best)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(helpLine))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("History unavailable:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs finished yet.\nGo lose some lives first!")
	}
	return m.table.View()
}

// centerText centers a (possibly multi-line) block horizontally within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
