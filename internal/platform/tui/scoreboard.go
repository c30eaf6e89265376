package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-runner/internal/registry"
	"github.com/vovakirdan/star-runner/internal/storage"
)

const (
	minWidthForStats = 80 // Narrower terminals drop the stats panel
	statsPanelWidth  = 22
	scoreboardRows   = 50 // Rows loaded per view
)

// scoreView selects which runs the table lists.
type scoreView int

const (
	viewBest scoreView = iota
	viewRecent
	viewCount
)

func (v scoreView) String() string {
	if v == viewRecent {
		return "Recent"
	}
	return "Best"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "best/recent"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       scoreView
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	causes     map[string]int // Game-over cause -> runs
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool // Back to the menu rather than quit
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// currentGame returns the selected game ID, or "" with no games registered.
func (m ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// createTable sizes the score table to the terminal.
func (m ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Hit by", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 13},
	}

	// Give spare width to the date column
	used := 4 + 7 + 8 + 6 + 13 + 2*len(columns) + 4
	avail := m.width - 4
	if m.showStats() {
		avail -= statsPanelWidth + 4
	}
	if extra := avail - used; extra > 0 {
		columns[4].Width += min(extra, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
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

// reload fetches the rows and stats for the selected game and view.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.causes = nil, nil, nil
	gameID := m.currentGame()
	if m.store != nil && gameID != "" {
		var err error
		if m.view == viewRecent {
			m.scores, err = m.store.RecentScores(gameID, scoreboardRows)
		} else {
			m.scores, err = m.store.TopScores(gameID, scoreboardRows)
		}
		if err != nil {
			m.scores = nil
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
		if causes, err := m.store.CauseCounts(gameID); err == nil {
			m.causes = causes
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// scoreRows turns entries into table rows, numbered in list order.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		cause := e.Cause
		if cause == "" {
			cause = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			cause,
			formatDuration(e.Duration),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.view = (m.view + 1) % viewCount
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.PrevGame):
			if n := len(m.games); n > 1 {
				step := 1
				if key.Matches(msg, m.keys.PrevGame) {
					step = n - 1
				}
				m.gameCursor = (m.gameCursor + step) % n
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	body := boxStyle.Render(m.renderTableContent())
	if m.showStats() {
		panel := boxStyle.Width(statsPanelWidth).Render(m.renderStats())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panel)
	}
	b.WriteString(centerBlock(body, m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs shows the view switcher with the active view highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, viewCount)
	for v := range viewCount {
		if v == m.view {
			tabs = append(tabs, activeStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nCatch some stars to get on the board!")
	}
	return m.table.View()
}

// renderStats lists totals and how runs ended.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No stats yet"
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(dim.Render(fmt.Sprintf("%-9s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Runs", fmt.Sprintf("%d", m.stats.GamesCount))
	row("Best", fmt.Sprintf("%d", m.stats.HighScore))
	row("Average", fmt.Sprintf("%.1f", m.stats.AvgScore))
	if !m.stats.LastPlayed.IsZero() {
		row("Last", m.stats.LastPlayed.Format("Jan 02"))
	}

	causes := make([]string, 0, len(m.causes))
	for c := range m.causes {
		if c != "" {
			causes = append(causes, c)
		}
	}
	if len(causes) > 0 {
		sort.Strings(causes)
		b.WriteString("\nEnded by\n")
		for _, c := range causes {
			row("  "+c, fmt.Sprintf("%d", m.causes[c]))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// centerBlock indents every line of a multi-line block by the same amount.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	indent := strings.Repeat(" ", pad)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// formatDuration renders a run length as m:ss, or "-" when unknown.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
