package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/deathgame/internal/game"
	"github.com/appengine-ltd/deathgame/internal/parser"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Engine *game.Engine
	// TimeScale multiplies wall-clock seconds into game seconds.
	TimeScale    float64
	TickInterval time.Duration
	StepSize     float64
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = 1
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	if cfg.StepSize <= 0 {
		cfg.StepSize = 10
	}
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	if a.cfg.Engine == nil {
		return fmt.Errorf("ui: no engine configured")
	}
	m := newMenuModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	warnRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	panel       = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("22")).
			PaddingLeft(2)
)

// --- Menu model ---

type screen int

const (
	screenMenu screen = iota
	screenRun
	screenRunCommandLibrary
)

type menuItem int

const (
	itemStart menuItem = iota
	itemNewRun
	itemQuit
)

var menuItems = []string{"Start", "New run", "Quit"}

type menuModel struct {
	cfg    AppConfig
	engine *game.Engine
	parser *parser.Parser
	idx    int
	screen screen

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int

	runMessages  []string
	lastTickAt   time.Time
	lastSeq      int
	lastEventID  string
	announcedEnd bool
	status       string
}

func newMenuModel(cfg AppConfig) menuModel {
	ti := textinput.New()
	ti.Placeholder = "go north, rest, choose 1, help..."
	ti.CharLimit = 120
	ti.Width = 48

	return menuModel{
		cfg:      cfg,
		engine:   cfg.Engine,
		parser:   parser.New(),
		screen:   screenMenu,
		input:    ti,
		viewport: viewport.New(60, 16),
	}
}

func (m menuModel) Init() tea.Cmd {
	return textinput.Blink
}

type clockTickMsg struct {
	at time.Time
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return clockTickMsg{at: at}
	})
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, int(float64(msg.Width)*0.6))
		m.viewport.Height = max(5, msg.Height-8)
		m.viewport.SetContent(m.bodyText())
		return m, nil
	case clockTickMsg:
		return m.updateClock(msg)
	case tea.KeyMsg:
		switch m.screen {
		case screenRun:
			return m.updateRun(msg)
		case screenRunCommandLibrary:
			return m.updateCommandLibrary(msg)
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m menuModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + len(menuItems) - 1) % len(menuItems)
		return m, nil
	case "down", "j":
		m.idx = (m.idx + 1) % len(menuItems)
		return m, nil
	case "enter":
		switch menuItem(m.idx) {
		case itemStart:
			return m.enterRun()
		case itemNewRun:
			m.resetRun()
			return m.enterRun()
		case itemQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) enterRun() (tea.Model, tea.Cmd) {
	m.screen = screenRun
	m.lastTickAt = time.Time{}
	m.input.Focus()
	if len(m.runMessages) == 0 {
		m.appendMessage("Run started. Reach %.0f distance to survive.", m.engine.Status().Target)
	}
	m.syncLog()
	return m, tea.Batch(tickCmd(m.cfg.TickInterval), textinput.Blink)
}

func (m *menuModel) resetRun() {
	m.engine.Reset()
	m.runMessages = nil
	m.lastSeq = 0
	m.lastEventID = ""
	m.announcedEnd = false
}

// updateClock converts wall time since the previous tick into game seconds.
// Ticks outside the run screen stop the clock.
func (m menuModel) updateClock(msg clockTickMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenRun {
		m.lastTickAt = time.Time{}
		return m, nil
	}
	if !m.lastTickAt.IsZero() {
		dt := msg.at.Sub(m.lastTickAt).Seconds() * m.cfg.TimeScale
		if dt > 0 {
			m.engine.Update(dt)
		}
	}
	m.lastTickAt = msg.at
	m.syncLog()
	return m, tickCmd(m.cfg.TickInterval)
}

func (m menuModel) View() string {
	switch m.screen {
	case screenRun:
		return m.runView()
	case screenRunCommandLibrary:
		return m.commandLibraryView()
	default:
		return m.menuView()
	}
}

func (m menuModel) menuView() string {
	title := brightGreen.Render("DEATH GAME") + dimGreen.Render("  survival simulator")
	ver := dimGreen.Render(fmt.Sprintf("v%s  (%s)  %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate))

	out := ""
	out += title + "\n" + ver + "\n"
	out += border.Render("----------------------------------------") + "\n\n"

	for i, it := range menuItems {
		cursor := "  "
		line := it
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(it)
		} else {
			line = green.Render(it)
		}
		out += cursor + line + "\n"
	}

	out += "\n" + border.Render("----------------------------------------") + "\n"
	out += dimGreen.Render("↑/↓ to move, Enter to select, q to quit") + "\n"
	if m.status != "" {
		out += "\n" + green.Render(m.status) + "\n"
	}
	return out
}
