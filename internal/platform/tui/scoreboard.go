package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
	"github.com/vovakirdan/tetrisus/internal/storage"
)

const (
	scoreboardLimit  = 100 // Games loaded into the table
	statsPanelWidth  = 22
	minWidthForStats = 80 // Narrower terminals show the table alone
)

var (
	scoreboardBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	scoreboardDim = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap is the table's navigation plus reload and quit.
// It implements help.KeyMap.
type ScoreboardKeyMap struct {
	Table  table.KeyMap
	Reload key.Binding
	Quit   key.Binding
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Table: table.DefaultKeyMap(),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "back"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Table.LineUp, k.Table.LineDown, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Table.LineUp, k.Table.LineDown},
		{k.Table.PageUp, k.Table.PageDown},
		{k.Table.GotoTop, k.Table.GotoBottom},
		{k.Reload, k.Quit},
	}
}

// ScoreboardModel browses the recorded game history.
type ScoreboardModel struct {
	store    *storage.Store // May be nil
	games    []storage.GameRecord
	stats    *storage.GameStats
	best     int
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over store sized for the terminal.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	m := ScoreboardModel{
		store:  store,
		keys:   keys,
		help:   help.New(),
		width:  width,
		height: height,
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "#", Width: 4},
				{Title: "Score", Width: 8},
				{Title: "Lines", Width: 6},
				{Title: "Level", Width: 6},
				{Title: "Played", Width: 13},
			}),
			table.WithFocused(true),
			table.WithKeyMap(keys.Table),
		),
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(styles)

	m.resize(width, height)
	m.reload()
	return m
}

// reload reads games, stats and the stored best from the store.
func (m *ScoreboardModel) reload() {
	m.games, m.stats, m.best, m.err = nil, nil, 0, nil
	if m.store != nil {
		m.games, m.err = m.store.TopGames(tetris.GameID, scoreboardLimit)
		if stats, err := m.store.Stats(tetris.GameID); err == nil {
			m.stats = stats
		}
		if best, err := m.store.BestScore(tetris.GameID); err == nil {
			m.best = best
		}
	}

	rows := make([]table.Row, 0, len(m.games))
	for i, g := range m.games {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.Lines),
			strconv.Itoa(g.Level),
			g.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resize fits the table between the title and the help line.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.table.SetHeight(max(3, height-8))
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.err != nil:
		body = scoreboardDim.Padding(2, 4).Render("Could not load scores:\n" + m.err.Error())
	case len(m.games) == 0:
		body = scoreboardDim.Padding(2, 4).Render("No games recorded yet.\nPlay a game to set a high score!")
	default:
		body = m.table.View()
	}
	body = scoreboardBox.Render(body)

	if m.width >= minWidthForStats {
		stats := scoreboardBox.Width(statsPanelWidth).Render(m.statsView())
		body = lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", body)
	} else {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}

	title := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render("HIGH SCORES"))
	return title + "\n\n" + body + "\n" + scoreboardDim.Render(m.help.View(m.keys))
}

// statsView renders the aggregate panel.
func (m ScoreboardModel) statsView() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("─", statsPanelWidth-4))
	b.WriteString("\n")

	if m.stats == nil {
		fmt.Fprintf(&b, "Best:    %d\n", m.best)
		return b.String()
	}
	fmt.Fprintf(&b, "Best:    %d\n", max(m.best, m.stats.HighScore))
	fmt.Fprintf(&b, "Games:   %d\n", m.stats.GamesCount)
	fmt.Fprintf(&b, "Average: %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Lines:   %d\n", m.stats.TotalLines)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last:    %s\n", m.stats.LastPlayed.Format("Jan 02"))
	}
	return b.String()
}

// RunScoreboard runs the scoreboard until the user leaves it.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
