package ui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/deathgame/internal/game"
	"github.com/appengine-ltd/deathgame/internal/parser"
)

const maxRunMessages = 200

var arrowDirections = map[string]string{
	"up":    "north",
	"down":  "south",
	"left":  "west",
	"right": "east",
}

func (m menuModel) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
		m.input.Blur()
		m.status = "Paused."
		return m, nil
	case "enter":
		return m.submitRunInput()
	case "?":
		if m.input.Value() == "" {
			m.screen = screenRunCommandLibrary
			return m, nil
		}
	}

	// Arrow keys walk while the prompt is empty; otherwise they edit text.
	if dir, ok := arrowDirections[msg.String()]; ok && m.input.Value() == "" {
		m.step(dir, m.cfg.StepSize)
		m.syncLog()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) submitRunInput() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		return m, nil
	}
	m.appendMessage("> %s", raw)

	intent := m.parser.Parse(m.parseContext(), raw)
	if intent.Clarify != nil {
		m.appendMessage("%s", intent.Clarify.Prompt)
		for i, option := range intent.Clarify.Options {
			m.appendMessage("  %d. %s", i+1, parser.IntentToCommandString(option))
		}
		m.syncLog()
		return m, nil
	}

	cmd := m.dispatch(intent)
	m.syncLog()
	return m, cmd
}

func (m menuModel) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{}
	if current := m.engine.Status().Current; current != nil {
		for _, c := range current.Choices {
			ctx.Choices = append(ctx.Choices, string(c.ID))
		}
	}
	return ctx
}

func (m *menuModel) dispatch(intent parser.Intent) tea.Cmd {
	switch intent.Verb {
	case "help":
		m.screen = screenRunCommandLibrary
	case "status":
		m.appendMessage("%s", statusLine(m.engine.Status()))
	case "history":
		history := m.engine.History()
		if len(history) == 0 {
			m.appendMessage("Nothing has happened yet.")
		}
		for _, h := range history {
			m.appendMessage("%s", historyLine(h))
		}
	case "go":
		distance := m.cfg.StepSize
		if intent.Quantity != nil && intent.Quantity.N > 0 {
			distance = float64(intent.Quantity.N)
		}
		m.step(intent.Args[0], distance)
	case "rest":
		before := m.engine.Status().Day
		m.engine.AdvanceDay()
		if after := m.engine.Status().Day; after > before {
			m.appendMessage("You rest until day %d.", after)
		}
	case "choose":
		m.choose(intent.Args[0])
	case "reset":
		m.resetRun()
		m.appendMessage("Run started. Reach %.0f distance to survive.", m.engine.Status().Target)
	case "quit":
		return tea.Quit
	default:
		m.appendMessage("Nothing happens.")
	}
	return nil
}

func (m *menuModel) step(direction string, distance float64) {
	dx, dy, ok := parser.DirectionVector(direction)
	if !ok {
		m.appendMessage("Unknown direction %q.", direction)
		return
	}
	m.engine.Move(dx*distance, dy*distance)
}

func (m *menuModel) choose(arg string) {
	var err error
	if n, convErr := strconv.Atoi(arg); convErr == nil {
		err = m.engine.ResolveChoice(n)
	} else {
		err = m.engine.ResolveEvent(game.ChoiceID(arg))
	}
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNoPendingEvent):
		m.appendMessage("There is nothing to decide right now.")
	case errors.Is(err, game.ErrGameOver):
		m.appendMessage("The run is over. Type reset to start again.")
	default:
		log.Printf("resolve %q: %v", arg, err)
		m.appendMessage("That is not one of the options.")
	}
}

// syncLog appends new journal entries, a newly pending encounter, and the
// end of the run to the message log.
func (m *menuModel) syncLog() {
	for _, h := range m.engine.History() {
		if h.Seq <= m.lastSeq {
			continue
		}
		m.appendMessage("%s", historyLine(h))
		m.lastSeq = h.Seq
	}

	st := m.engine.Status()
	if st.Current != nil && st.Current.ID != m.lastEventID {
		m.lastEventID = st.Current.ID
		m.appendMessage("!! %s: %s", st.Current.Title, st.Current.Description)
		for i, c := range st.Current.Choices {
			m.appendMessage("   %d. %s", i+1, c.Text)
		}
	}

	if st.GameOver && !m.announcedEnd {
		m.announcedEnd = true
		if st.Victory {
			m.appendMessage("You made it! %.0f distance covered in %d days.", st.Distance, st.Day)
		} else {
			m.appendMessage("You died of %s on day %d. Type reset to try again.", st.DeathCause, st.Day)
		}
	}

	m.viewport.SetContent(m.bodyText())
	m.viewport.GotoBottom()
}

func (m *menuModel) appendMessage(format string, args ...any) {
	day := 1
	if m.engine != nil {
		day = m.engine.Status().Day
	}
	m.runMessages = append(m.runMessages, fmt.Sprintf("[Day %d] ", day)+fmt.Sprintf(format, args...))
	if over := len(m.runMessages) - maxRunMessages; over > 0 {
		m.runMessages = append([]string(nil), m.runMessages[over:]...)
	}
}

func (m menuModel) bodyText() string {
	var b strings.Builder
	b.WriteString(brightGreen.Render("Message History"))
	b.WriteString("\n")
	for _, line := range m.runMessages {
		b.WriteString(green.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m menuModel) runView() string {
	st := m.engine.Status()
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), panel.Render(renderStatus(st)))
	help := dimGreen.Render("Arrows walk, Enter sends a command, ? for commands, Esc pauses.")
	return lipgloss.JoinVertical(lipgloss.Left, main, "", m.input.View(), help)
}

func renderStatus(st game.Status) string {
	var b strings.Builder
	b.WriteString(brightGreen.Render(fmt.Sprintf("DAY %d", st.Day)))
	b.WriteString(dimGreen.Render(fmt.Sprintf("  %02.0fs", st.Elapsed)))
	b.WriteString("\n\n")

	for _, g := range []struct {
		name  string
		value float64
	}{{"Health", st.Health}, {"Stamina", st.Stamina}, {"Morale", st.Morale}} {
		b.WriteString(fmt.Sprintf("%-8s %s %3.0f\n", g.name, bar(g.value, 100, 12), g.value))
	}

	b.WriteString("\n")
	for _, r := range st.Resources {
		line := fmt.Sprintf("%-9s %3d/%-3d %s", r.Resource, r.Quantity, r.Max, r.Level)
		if r.Level == game.LevelCritical || r.Level == game.LevelEmpty {
			b.WriteString(warnRed.Render(line))
		} else {
			b.WriteString(green.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimGreen.Render(fmt.Sprintf("Supplies last ~%.1f days", st.SupplyDays)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Distance %s %5.1f%%\n", bar(st.Distance, st.Target, 12), st.Progress))
	b.WriteString(dimGreen.Render(fmt.Sprintf("%.1f of %.0f  events %d", st.Distance, st.Target, st.EventsFaced)))
	b.WriteString("\n")

	if st.Current != nil {
		b.WriteString("\n")
		b.WriteString(warnRed.Render(st.Current.Title))
		b.WriteString("\n")
		for i, c := range st.Current.Choices {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Text))
		}
	}
	if st.GameOver {
		b.WriteString("\n")
		if st.Victory {
			b.WriteString(brightGreen.Render("YOU SURVIVED"))
		} else {
			b.WriteString(warnRed.Render("YOU DIED (" + string(st.DeathCause) + ")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func bar(value, maximum float64, width int) string {
	filled := 0
	if maximum > 0 {
		filled = int(value / maximum * float64(width))
	}
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func statusLine(st game.Status) string {
	return fmt.Sprintf("Health %.0f, stamina %.0f, morale %.0f. Food %d, water %d, medicine %d, fuel %d, weapons %d. %.1f/%.0f travelled.",
		st.Health, st.Stamina, st.Morale,
		st.Inventory.Food, st.Inventory.Water, st.Inventory.Medicine, st.Inventory.Fuel, st.Inventory.Weapons,
		st.Distance, st.Target)
}

func historyLine(h game.HistoryEntry) string {
	return fmt.Sprintf("%s: %s", h.Title, h.Detail)
}

func (m menuModel) updateCommandLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "q", "?":
		m.screen = screenRun
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m menuModel) commandLibraryView() string {
	var b strings.Builder
	b.WriteString(brightGreen.Render("COMMANDS"))
	b.WriteString("\n")
	b.WriteString(border.Render("----------------------------------------"))
	b.WriteString("\n")
	for _, def := range m.parser.Commands() {
		line := fmt.Sprintf("%-8s", def.Canonical)
		if len(def.Aliases) > 0 {
			line += dimGreen.Render("  (" + strings.Join(def.Aliases, ", ") + ")")
		}
		b.WriteString(green.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimGreen.Render("While an encounter is pending, type a choice number or its name."))
	b.WriteString("\n")
	b.WriteString(dimGreen.Render("Esc to return."))
	return b.String()
}
