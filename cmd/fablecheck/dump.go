package main

import (
	"sort"

	"github.com/astokes/fable/internal/game/world"
)

// The dump types mirror the resolved world in a YAML-friendly shape, with
// entity references flattened back to names. Ordering is sorted throughout
// so dumps of the same script are byte-identical.

type worldDump struct {
	Title     string         `yaml:"title"`
	Greeting  string         `yaml:"greeting,omitempty"`
	Credits   string         `yaml:"credits,omitempty"`
	StartRoom string         `yaml:"start_room"`
	Rooms     []roomDump     `yaml:"rooms"`
	Actions   []actionDump   `yaml:"actions"`
	Dialogues []dialogueDump `yaml:"dialogues"`
}

type roomDump struct {
	Name        string            `yaml:"name"`
	Variant     string            `yaml:"variant,omitempty"`
	Description string            `yaml:"description"`
	Characters  []string          `yaml:"characters,omitempty"`
	Exits       map[string]string `yaml:"exits,omitempty"`
	Actions     []string          `yaml:"actions,omitempty"`
	Trap        bool              `yaml:"trap,omitempty"`
}

type actionDump struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	Required    string   `yaml:"required,omitempty"`
	Target      string   `yaml:"target,omitempty"`
	Items       []string `yaml:"items,omitempty"`
	Original    string   `yaml:"original,omitempty"`
	Replacement string   `yaml:"replacement,omitempty"`
	Sequence    []string `yaml:"sequence,omitempty"`
}

type dialogueDump struct {
	Name      string         `yaml:"name"`
	Variant   string         `yaml:"variant,omitempty"`
	Text      string         `yaml:"text"`
	Requires  []string       `yaml:"requires,omitempty"`
	Responses []responseDump `yaml:"responses,omitempty"`
}

type responseDump struct {
	Text     string   `yaml:"text"`
	Requires []string `yaml:"requires,omitempty"`
	Triggers string   `yaml:"triggers,omitempty"`
	LeadsTo  string   `yaml:"leads_to,omitempty"`
}

func newWorldDump(w *world.World) worldDump {
	d := worldDump{
		Title:     w.Meta.Title,
		Greeting:  w.Meta.Greeting,
		Credits:   w.Meta.Credits,
		StartRoom: string(w.Meta.StartRoom),
	}

	for _, name := range sortedKeys(w.Rooms) {
		group := w.Rooms[name]
		for _, variant := range sortedKeys(group) {
			d.Rooms = append(d.Rooms, newRoomDump(group[variant]))
		}
	}
	for _, name := range sortedKeys(w.Actions) {
		d.Actions = append(d.Actions, newActionDump(w.Actions[name]))
	}
	for _, name := range sortedKeys(w.Dialogues) {
		group := w.Dialogues[name]
		for _, variant := range sortedKeys(group) {
			d.Dialogues = append(d.Dialogues, newDialogueDump(group[variant]))
		}
	}
	return d
}

func newRoomDump(room *world.Room) roomDump {
	d := roomDump{
		Name:        string(room.Name),
		Variant:     string(room.Variant),
		Description: room.Description,
		Trap:        room.IsTrap(),
	}
	for _, character := range room.Characters {
		d.Characters = append(d.Characters, string(character.Name))
	}
	if len(room.Exits) > 0 {
		d.Exits = make(map[string]string, len(room.Exits))
		for direction, target := range room.Exits {
			d.Exits[string(direction)] = string(target)
		}
	}
	for _, name := range room.Actions {
		d.Actions = append(d.Actions, string(name))
	}
	return d
}

func newActionDump(action *world.Action) actionDump {
	d := actionDump{
		Name:        string(action.Name),
		Kind:        string(action.Kind),
		Description: action.Description,
	}
	if action.Required != nil {
		d.Required = string(action.Required.Name)
	}
	switch action.Kind {
	case world.ActionChangeRoom:
		d.Target = action.Room.QualifiedName()
	case world.ActionTeleport:
		d.Target = string(action.RoomName)
	case world.ActionGiveItem, world.ActionTakeItem:
		for _, item := range action.Items {
			d.Items = append(d.Items, string(item.Name))
		}
	case world.ActionReplaceItem:
		d.Original = string(action.Original.Name)
		d.Replacement = string(action.Replacement.Name)
	case world.ActionSequence:
		for _, member := range action.Sequence {
			d.Sequence = append(d.Sequence, string(member))
		}
	}
	return d
}

func newDialogueDump(dialogue *world.Dialogue) dialogueDump {
	d := dialogueDump{
		Name:     string(dialogue.Name),
		Variant:  string(dialogue.Variant),
		Text:     dialogue.Text,
		Requires: requirementDump(dialogue.Requires),
	}
	for _, response := range dialogue.Responses {
		rd := responseDump{
			Text:     response.Text,
			Requires: requirementDump(response.Requires),
			LeadsTo:  string(response.LeadsTo),
		}
		if response.Triggers != nil {
			rd.Triggers = string(response.Triggers.Name)
		}
		d.Responses = append(d.Responses, rd)
	}
	return d
}

func requirementDump(reqs []world.Requirement) []string {
	var out []string
	for _, req := range reqs {
		switch req.Kind {
		case world.RequireRoomVariant:
			out = append(out, string(req.Kind)+":"+req.Room.QualifiedName())
		default:
			out = append(out, string(req.Kind)+":"+string(req.Item.Name))
		}
	}
	return out
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
