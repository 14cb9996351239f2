package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shape-shifter/internal/games/shifter"
	"github.com/vovakirdan/shape-shifter/internal/registry"
)

// MaxPickerLevel is the highest level offered by the level picker.
const MaxPickerLevel = 10

var (
	pickerTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pickerHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	pickerModeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	pickerTableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// LevelSelectModel lets the player choose the level a run starts at and,
// when several are offered, the game mode. Each row previews the level's
// difficulty.
type LevelSelectModel struct {
	table     table.Model
	keyMapper *KeyMapper
	width     int
	height    int
	selected  int // 0 until a level is chosen
	quitting  bool
	modes     []registry.GameInfo
	mode      int
}

// levelRows builds one table row per level.
func levelRows(maxLevel int) []table.Row {
	rows := make([]table.Row, 0, maxLevel)
	for n := 1; n <= maxLevel; n++ {
		info := shifter.NewLevel(n).Info()
		rows = append(rows, table.Row{
			strconv.Itoa(info.Number),
			strconv.Itoa(info.PlayerMaxHealth),
			fmt.Sprintf("+%d%%", info.EnemyHealthPct),
			fmt.Sprintf("+%d%%", info.EnemyDamagePct),
			fmt.Sprintf("%.1fs", float64(info.SpawnIntervalMs)/1000),
			strconv.Itoa(info.PointsToAdvance),
		})
	}
	return rows
}

// NewLevelSelectModel creates a picker with the cursor on level current.
func NewLevelSelectModel(width, height, current int) LevelSelectModel {
	columns := []table.Column{
		{Title: "Level", Width: 5},
		{Title: "Max HP", Width: 6},
		{Title: "Enemy HP", Width: 8},
		{Title: "Enemy DMG", Width: 9},
		{Title: "Spawn", Width: 5},
		{Title: "To advance", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(levelRows(MaxPickerLevel)),
		table.WithFocused(true),
		table.WithHeight(MaxPickerLevel+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(current - 1)

	return LevelSelectModel{
		table:     t,
		keyMapper: NewKeyMapper(DefaultKeyMap()),
		width:     width,
		height:    height,
	}
}

// WithModes returns the picker offering the given game modes, with the
// cursor on id. Unknown ids select the first mode.
func (m LevelSelectModel) WithModes(modes []registry.GameInfo, id string) LevelSelectModel {
	if len(modes) == 0 && id != "" {
		modes = []registry.GameInfo{{ID: id}}
	}
	m.modes = modes
	m.mode = max(slices.IndexFunc(modes, func(g registry.GameInfo) bool { return g.ID == id }), 0)
	return m
}

// Init initializes the picker.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.table.MoveUp(1)
			return m, nil
		case MenuActionDown:
			m.table.MoveDown(1)
			return m, nil
		case MenuActionSelect:
			m.selected = m.table.Cursor() + 1
			return m, nil
		case MenuActionNext:
			m.cycleMode(1)
			return m, nil
		case MenuActionPrev:
			m.cycleMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker centered on screen.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("SHAPE SHIFTER"))
	b.WriteString("\n\n")
	hint := "↑/↓: choose • enter: play • q: quit"
	if len(m.modes) > 1 {
		b.WriteString(pickerModeStyle.Render("◀ " + m.modes[m.mode].Title + " ▶"))
		b.WriteString("\n\n")
		hint = "↑/↓: choose • ←/→: mode • enter: play • q: quit"
	}
	b.WriteString("Choose a starting level")
	b.WriteString("\n\n")
	b.WriteString(pickerTableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(pickerHintStyle.Render(hint))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen level, or 0 while the player is choosing.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// Mode returns the ID of the chosen game mode, or "" when the picker
// offers none.
func (m LevelSelectModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

func (m *LevelSelectModel) cycleMode(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + delta + n) % n
	}
}

// Cursor returns the highlighted level.
func (m LevelSelectModel) Cursor() int {
	return m.table.Cursor() + 1
}

// IsQuitting returns true if the user quit from the picker.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}
