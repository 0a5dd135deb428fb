package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/astokes/fable/internal/game/theme"
	"github.com/astokes/fable/internal/game/world"
)

// menuReserve is the vertical space kept below the viewport for the menu,
// prompt, and help line.
const menuReserve = 12

type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	text      lipgloss.Style
	highlight lipgloss.Style
	subdued   lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(th.Title.Terminal()).
			Bold(true),
		heading: lipgloss.NewStyle().
			Foreground(th.Heading.Terminal()).
			Bold(true),
		text: lipgloss.NewStyle().
			Foreground(th.Text.Terminal()),
		highlight: lipgloss.NewStyle().
			Foreground(th.HighlightText.Terminal()).
			Background(th.Highlight.Terminal()).
			Bold(true),
		subdued: lipgloss.NewStyle().
			Foreground(th.Subdued.Terminal()),
	}
}

func (m Model) contentWidth() int {
	width := m.width
	if m.cfg.MaxWidth > 0 && width > m.cfg.MaxWidth {
		width = m.cfg.MaxWidth
	}
	return width
}

func (m Model) contentHeight() int {
	height := m.height - menuReserve
	if height < 3 {
		height = 3
	}
	return height
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.session.World().Meta.Title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.phase == phaseEnding {
		b.WriteString(m.styles.subdued.Render(m.lang.Quit))
		b.WriteString("\n")
		return b.String()
	}

	if m.notice != "" {
		b.WriteString(m.styles.text.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.heading.Render(m.lang.Choose))
	b.WriteString("\n")
	b.WriteString(m.renderMenu())
	b.WriteString("\n")
	b.WriteString(m.styles.subdued.Render("↑/↓ · enter · esc " + m.lang.Cancel))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(m.styles.highlight.Render("> " + c.label))
		} else {
			b.WriteString(m.styles.text.Render("  " + c.label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// bodyContent renders the viewport text for the current phase.
func (m Model) bodyContent() string {
	w := m.session.World()
	wrap := lipgloss.NewStyle().Width(m.contentWidth())

	switch m.phase {
	case phaseGreeting:
		return wrap.Render(m.styles.text.Render(w.Meta.Greeting))

	case phaseDialogue:
		return wrap.Render(m.styles.text.Render(m.dialogue.Text))

	case phaseEnding:
		room := m.session.CurrentRoom()
		var b strings.Builder
		b.WriteString(m.styles.text.Render(room.Description))
		b.WriteString("\n\n")
		b.WriteString(m.styles.title.Render(m.lang.TheEnd))
		if w.Meta.Credits != "" {
			b.WriteString("\n\n")
			b.WriteString(m.styles.heading.Render(m.lang.Credits))
			b.WriteString("\n")
			b.WriteString(m.styles.subdued.Render(w.Meta.Credits))
		}
		return wrap.Render(b.String())

	default:
		return wrap.Render(m.roomBody())
	}
}

func (m Model) roomBody() string {
	room := m.session.CurrentRoom()
	var b strings.Builder
	b.WriteString(m.styles.heading.Render(string(room.Name)))
	b.WriteString("\n")
	b.WriteString(m.styles.text.Render(room.Description))
	b.WriteString("\n\n")

	if len(room.Exits) > 0 {
		b.WriteString(m.styles.heading.Render(m.lang.Exits))
		b.WriteString("\n")
		directions := make([]world.Identifier, 0, len(room.Exits))
		for direction := range room.Exits {
			directions = append(directions, direction)
		}
		sort.Slice(directions, func(i, j int) bool { return directions[i] < directions[j] })
		for _, direction := range directions {
			b.WriteString(m.styles.text.Render("- " + direction.Display() + ": " + string(room.Exits[direction])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(room.Characters) > 0 {
		b.WriteString(m.styles.heading.Render(m.lang.Characters))
		b.WriteString("\n")
		for _, character := range room.Characters {
			b.WriteString(m.styles.text.Render("- " + string(character.Name)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(room.Actions) > 0 {
		b.WriteString(m.styles.heading.Render(m.lang.Actions))
		b.WriteString("\n")
		for _, name := range room.Actions {
			b.WriteString(m.styles.text.Render("- " + name.Display()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.heading.Render(m.lang.Inventory))
	b.WriteString("\n")
	items := m.session.Inventory()
	if len(items) == 0 {
		b.WriteString(m.styles.subdued.Render(m.lang.InventoryEmpty))
		b.WriteString("\n")
	} else {
		for _, item := range items {
			b.WriteString(m.styles.text.Render("- " + item.Name.Display()))
			b.WriteString("\n")
		}
	}
	return b.String()
}
