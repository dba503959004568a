package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/progress"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// AchievementsKeyMap defines the key bindings for the achievements screen.
type AchievementsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AchievementsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AchievementsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultAchievementsKeyMap returns default key bindings.
func DefaultAchievementsKeyMap() AchievementsKeyMap {
	return AchievementsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AchievementsModel is the Bubble Tea model for the achievements screen.
type AchievementsModel struct {
	store    *storage.Store
	unlocked map[string]time.Time
	table    table.Model
	help     help.Model
	keys     AchievementsKeyMap
	width    int
	height   int
	quitting bool
}

// NewAchievementsModel creates a new achievements model.
func NewAchievementsModel(store *storage.Store, width, height int) AchievementsModel {
	h := help.New()
	h.ShowAll = false

	m := AchievementsModel{
		store:    store,
		unlocked: map[string]time.Time{},
		keys:     DefaultAchievementsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}

	if store != nil {
		if unlocks, err := store.Achievements(); err == nil {
			for _, u := range unlocks {
				m.unlocked[u.ID] = u.UnlockedAt
			}
		}
	}

	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *AchievementsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Achievement", Width: 18},
		{Title: "How", Width: 32},
		{Title: "Unlocked", Width: 14},
	}

	height := m.height - 8
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

// updateTableRows fills the table with all achievements, locked and unlocked.
func (m *AchievementsModel) updateTableRows() {
	rows := make([]table.Row, 0, len(progress.Achievements))
	for _, a := range progress.Achievements {
		mark := " "
		when := "-"
		if at, ok := m.unlocked[a.ID]; ok {
			mark = "*"
			when = at.Format("Jan 02 2006")
		}
		rows = append(rows, table.Row{mark, a.Title, a.Description, when})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the achievements model.
func (m AchievementsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the achievements screen.
func (m AchievementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the achievements screen.
func (m AchievementsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("ACHIEVEMENTS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunAchievements runs the achievements screen.
func RunAchievements(store *storage.Store, width, height int) error {
	model := NewAchievementsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
