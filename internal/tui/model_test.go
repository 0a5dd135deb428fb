package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/astokes/fable/internal/config"
	"github.com/astokes/fable/internal/game/session"
	"github.com/astokes/fable/internal/game/world"
	"github.com/astokes/fable/internal/script"
)

const playerWorldText = `
title = Shed
greeting = You wake in a yard.
start_room = Yard

[Item:lever]
description = A worn lever.

[Room:Yard]
description = Open ground.
characters = Warden
exits = west:Wood_Shed
actions = find_lever

[Room:Wood_Shed]
description = Stacked firewood.
exits = east:Yard

[Character:Warden]
start_dialogue = hello

[Action:find_lever]
description = You pry the lever loose.
give_item = lever

[Response:greet]
text = Hello to you.

[Dialogue:hello]
text = Who goes there?
response = greet
`

func newTestModel(t *testing.T, text string) Model {
	t.Helper()
	secs, err := script.Tokenize(text)
	require.NoError(t, err)
	w, err := world.Parse(secs)
	require.NoError(t, err)
	m := NewModel(session.New(w), config.UIConfig{MaxWidth: 80}, zap.NewNop())
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return sized.(Model)
}

func keyPress(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.Msg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsAtGreeting(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	assert.Equal(t, phaseGreeting, m.phase)
	require.Len(t, m.choices, 1)
	assert.Equal(t, choiceContinue, m.choices[0].kind)
	assert.Contains(t, m.View(), "You wake in a yard.")
}

func TestModelSkipsGreetingWhenAbsent(t *testing.T) {
	m := newTestModel(t, `title = T
start_room = Cell
[Room:Cell]
description = Dark.
exits = out:Cell
`)
	assert.Equal(t, phaseRoom, m.phase)
}

func TestRoomChoicesOrderAndLabels(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	m = keyPress(t, m, "enter")
	require.Equal(t, phaseRoom, m.phase)

	require.Len(t, m.choices, 4)
	assert.Equal(t, choiceMove, m.choices[0].kind)
	assert.Equal(t, "Go west", m.choices[0].label)
	assert.Equal(t, choiceTalk, m.choices[1].kind)
	assert.Equal(t, "Talk to Warden", m.choices[1].label)
	assert.Equal(t, choiceAct, m.choices[2].kind)
	assert.Equal(t, "Do find lever", m.choices[2].label)
	assert.Equal(t, choiceQuit, m.choices[3].kind)
}

func TestCursorNavigationStaysInBounds(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	m = keyPress(t, m, "enter")

	m = keyPress(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		m = keyPress(t, m, "down")
	}
	assert.Equal(t, len(m.choices)-1, m.cursor)
}

func TestMoveChoiceChangesRoom(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	m = keyPress(t, m, "enter")
	m = keyPress(t, m, "enter")

	assert.Equal(t, world.Title("Wood Shed"), m.session.CurrentRoomName())
	assert.Contains(t, m.View(), "Stacked firewood.")
}

func TestActionChoiceShowsNoticeAndItem(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	m = keyPress(t, m, "enter")
	m = keyPress(t, m, "down")
	m = keyPress(t, m, "down")
	m = keyPress(t, m, "enter")

	assert.Contains(t, m.notice, "You pry the lever loose.")
	assert.Contains(t, m.notice, "You receive")
	assert.Contains(t, m.View(), "- lever")
}

func TestDialogueFlow(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	m = keyPress(t, m, "enter")
	m = keyPress(t, m, "down")
	m = keyPress(t, m, "enter")

	require.Equal(t, phaseDialogue, m.phase)
	assert.Contains(t, m.View(), "Who goes there?")
	require.Len(t, m.choices, 2)
	assert.Equal(t, "Hello to you.", m.choices[0].label)
	assert.Equal(t, choiceBack, m.choices[1].kind)

	// A response with no trigger and no leads_to drops back to the room.
	m = keyPress(t, m, "enter")
	assert.Equal(t, phaseRoom, m.phase)
}

func TestEscLeavesDialogue(t *testing.T) {
	m := newTestModel(t, playerWorldText)
	m = keyPress(t, m, "enter")
	m = keyPress(t, m, "down")
	m = keyPress(t, m, "enter")
	require.Equal(t, phaseDialogue, m.phase)

	m = keyPress(t, m, "esc")
	assert.Equal(t, phaseRoom, m.phase)
}

func TestTrapRoomShowsEnding(t *testing.T) {
	m := newTestModel(t, `title = T
credits = By a ghost.
start_room = Yard
[Room:Yard]
description = Open ground.
exits = down:Pit
[Room:Pit]
description = No way out.
`)
	require.Equal(t, phaseRoom, m.phase)
	m = keyPress(t, m, "enter")

	assert.Equal(t, phaseEnding, m.phase)
	view := m.View()
	assert.Contains(t, view, "No way out.")
	assert.Contains(t, view, "The End")
	assert.Contains(t, view, "By a ghost.")
}

func TestLockedActionLeavesStateAlone(t *testing.T) {
	m := newTestModel(t, `title = T
start_room = Yard
[Item:key]
description = k
[Room:Yard]
description = Open ground.
exits = north:Yard
actions = drop_key
[Action:drop_key]
description = Gone.
take_item = key
`)
	m = keyPress(t, m, "down")
	m = keyPress(t, m, "enter")
	assert.Equal(t, "That does not work.", m.notice)
	assert.Equal(t, phaseRoom, m.phase)
}
