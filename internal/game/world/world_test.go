package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsMissingDefaultRoomVariant(t *testing.T) {
	_, err := Parse(mustTokenize(t, `title = T
start_room = Cell
[Room:Cell]
description = x
[Room:Shed|closed]
description = y
`))
	var defErr *DefaultVariantError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, KindRoom, defErr.Kind)
	assert.Equal(t, "Shed", defErr.ID)
}

func TestNewRejectsMissingDefaultDialogueVariant(t *testing.T) {
	_, err := Parse(mustTokenize(t, `title = T
start_room = Cell
[Room:Cell]
description = x
[Dialogue:hello|scared]
text = Stay back!
`))
	var defErr *DefaultVariantError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, KindDialogue, defErr.Kind)
	assert.Equal(t, "hello", defErr.ID)
}

func TestNewAggregatesAllDanglingGroups(t *testing.T) {
	// Broken in all three groups at once: a character's start dialogue, a
	// room action, an exit target, and the start room itself.
	_, err := Parse(mustTokenize(t, `title = T
start_room = Nowhere
[Character:Warden]
start_dialogue = ghost_talk
[Room:Cell]
description = x
characters = Warden
exits = north:Void
actions = ghost_action
[Response:r]
text = x
leads_to = other_ghost_talk
[Dialogue:hello]
text = Hi.
response = r
`))
	var missingErr *MissingEntitiesError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"ghost_talk", "other_ghost_talk"}, missingErr.Dialogues)
	assert.Equal(t, []string{"ghost_action"}, missingErr.Actions)
	assert.Equal(t, []string{"Nowhere", "Void"}, missingErr.Rooms)
}

func TestNewReportsMissingSequenceMembers(t *testing.T) {
	_, err := Parse(mustTokenize(t, `title = T
start_room = Cell
[Room:Cell]
description = x
[Action:ritual]
description = y
sequence = ghost_step
`))
	var missingErr *MissingEntitiesError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"ghost_step"}, missingErr.Actions)
}

func TestNewReportsMissingTeleportTarget(t *testing.T) {
	_, err := Parse(mustTokenize(t, `title = T
start_room = Cell
[Room:Cell]
description = x
[Action:warp]
description = y
teleport = Void
`))
	var missingErr *MissingEntitiesError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"Void"}, missingErr.Rooms)
}

func TestNewRejectsSequenceOfSequences(t *testing.T) {
	_, err := Parse(mustTokenize(t, `title = T
start_room = Cell
[Item:key]
description = k
[Room:Cell]
description = x
[Action:inner]
description = a
sequence = grab
[Action:outer]
description = b
sequence = inner
[Action:grab]
description = c
give_item = key
`))
	var circErr *CircularReferenceError
	require.ErrorAs(t, err, &circErr)
	assert.Equal(t, Identifier("inner"), circErr.Child)
	assert.Equal(t, Identifier("outer"), circErr.Parent)
}

func TestNewAcceptsValidWorld(t *testing.T) {
	w := parseWorld(t, fullWorldText)
	require.NotNil(t, w)
	assert.Len(t, w.Rooms, 2)
	assert.Len(t, w.Dialogues, 1)
	assert.Contains(t, w.Actions, Identifier("grab_key"))
}

func TestRoomIsTrap(t *testing.T) {
	w := parseWorld(t, `title = T
start_room = Oubliette
[Room:Oubliette]
description = No way out.
`)
	assert.True(t, w.Rooms["Oubliette"][""].IsTrap())
}
