// Package tui renders a playthrough in the terminal: a BubbleTea model that
// walks the player through rooms and dialogues by menu selection, mutating
// game state only through the session engine.
package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/astokes/fable/internal/config"
	"github.com/astokes/fable/internal/game/session"
	"github.com/astokes/fable/internal/game/theme"
	"github.com/astokes/fable/internal/game/world"
)

type phase int

const (
	phaseGreeting phase = iota
	phaseRoom
	phaseDialogue
	phaseEnding
)

type choiceKind int

const (
	choiceContinue choiceKind = iota
	choiceMove
	choiceTalk
	choiceAct
	choiceRespond
	choiceBack
	choiceQuit
)

// choice is one selectable menu entry. Which pointer is set depends on kind.
type choice struct {
	kind      choiceKind
	label     string
	direction world.Identifier
	character *world.Character
	action    *world.Action
	response  *world.Response
}

// Model is the BubbleTea model for one playthrough.
type Model struct {
	cfg     config.UIConfig
	logger  *zap.Logger
	session *session.Session
	lang    theme.Language
	styles  styles

	phase    phase
	dialogue *world.Dialogue
	choices  []choice
	cursor   int
	notice   string
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel builds the model for a freshly started session.
func NewModel(sess *session.Session, cfg config.UIConfig, logger *zap.Logger) Model {
	w := sess.World()
	m := Model{
		cfg:     cfg,
		logger:  logger,
		session: sess,
		lang:    w.Language,
		styles:  newStyles(w.Theme),
	}
	if w.Meta.Greeting != "" {
		m.phase = phaseGreeting
		m.choices = []choice{{kind: choiceContinue, label: m.lang.Continue}}
	} else {
		m.enterRoom()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = m.contentHeight()
		}
		m.viewport.SetContent(m.bodyContent())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.phase == phaseDialogue {
				m.leaveDialogue()
				return m, nil
			}
			return m, tea.Quit
		}
		if m.phase == phaseEnding {
			return m, tea.Quit
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			return m.selectChoice(m.choices[m.cursor])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) selectChoice(c choice) (tea.Model, tea.Cmd) {
	switch c.kind {
	case choiceContinue:
		m.enterRoom()

	case choiceQuit:
		return m, tea.Quit

	case choiceMove:
		if m.session.Move(c.direction) {
			m.logger.Debug("moved",
				zap.String("direction", string(c.direction)),
				zap.String("room", string(m.session.CurrentRoomName())))
			m.notice = ""
			m.enterRoom()
		} else {
			m.notice = m.lang.NothingHappens
		}

	case choiceTalk:
		m.enterDialogue(m.session.LookupDialogue(c.character.StartDialogue))

	case choiceAct:
		if m.session.Do(c.action) {
			m.logger.Debug("action applied", zap.String("action", string(c.action.Name)))
			m.notice = actionNotice(c.action, m.lang)
			m.enterRoom()
		} else {
			m.notice = m.lang.Locked
		}

	case choiceRespond:
		if !m.session.TriggerResponse(c.response) {
			m.notice = m.lang.Locked
			break
		}
		if c.response.Triggers != nil {
			m.notice = actionNotice(c.response.Triggers, m.lang)
		}
		if c.response.LeadsTo != "" {
			m.enterDialogue(m.session.LookupDialogue(c.response.LeadsTo))
		} else {
			m.leaveDialogue()
		}

	case choiceBack:
		m.leaveDialogue()
	}
	m.refreshBody()
	return m, nil
}

// enterRoom switches to the current room, or to the ending when the room is
// a trap.
func (m *Model) enterRoom() {
	m.dialogue = nil
	room := m.session.CurrentRoom()
	if room.IsTrap() {
		m.logger.Info("game over", zap.String("room", string(room.Name)))
		m.phase = phaseEnding
		m.choices = nil
		m.cursor = 0
		return
	}
	m.phase = phaseRoom
	m.choices = m.roomChoices(room)
	m.cursor = 0
}

func (m *Model) enterDialogue(d *world.Dialogue) {
	m.phase = phaseDialogue
	m.dialogue = d
	m.choices = m.dialogueChoices(d)
	m.cursor = 0
}

func (m *Model) leaveDialogue() {
	m.notice = ""
	m.enterRoom()
}

func (m *Model) refreshBody() {
	if m.ready {
		m.viewport.SetContent(m.bodyContent())
		m.viewport.GotoTop()
	}
}

// roomChoices lists exits, characters, and room actions in a stable order,
// followed by quit.
func (m *Model) roomChoices(room *world.Room) []choice {
	var choices []choice

	directions := make([]world.Identifier, 0, len(room.Exits))
	for direction := range room.Exits {
		directions = append(directions, direction)
	}
	sort.Slice(directions, func(i, j int) bool { return directions[i] < directions[j] })
	for _, direction := range directions {
		choices = append(choices, choice{
			kind:      choiceMove,
			label:     m.lang.GoTo + " " + direction.Display(),
			direction: direction,
		})
	}

	for _, character := range room.Characters {
		choices = append(choices, choice{
			kind:      choiceTalk,
			label:     m.lang.TalkTo + " " + string(character.Name),
			character: character,
		})
	}

	for _, name := range room.Actions {
		action := m.session.World().Actions[name]
		choices = append(choices, choice{
			kind:   choiceAct,
			label:  m.lang.Perform + " " + name.Display(),
			action: action,
		})
	}

	return append(choices, choice{kind: choiceQuit, label: m.lang.Quit})
}

// dialogueChoices lists the responses visible under current state, followed
// by back.
func (m *Model) dialogueChoices(d *world.Dialogue) []choice {
	var choices []choice
	for _, response := range m.session.FilterResponses(d.Responses) {
		choices = append(choices, choice{
			kind:     choiceRespond,
			label:    response.Text,
			response: response,
		})
	}
	return append(choices, choice{kind: choiceBack, label: m.lang.Back})
}

// actionNotice is the feedback line after a successful action: its
// description plus any inventory gain or loss.
func actionNotice(action *world.Action, lang theme.Language) string {
	notice := action.Description
	switch action.Kind {
	case world.ActionGiveItem:
		notice += "\n" + lang.YouReceive + " " + itemList(action.Items)
	case world.ActionTakeItem:
		notice += "\n" + lang.YouLose + " " + itemList(action.Items)
	case world.ActionReplaceItem:
		notice += "\n" + lang.YouLose + " " + action.Original.Name.Display() +
			". " + lang.YouReceive + " " + action.Replacement.Name.Display() + "."
	}
	return notice
}

func itemList(items []*world.Item) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name.Display()
	}
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out + "."
}

// Run starts the interactive player and blocks until the player quits or
// the game ends.
func Run(sess *session.Session, cfg config.UIConfig, logger *zap.Logger) error {
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(NewModel(sess, cfg, logger), opts...).Run()
	return err
}
