package world

import (
	"sort"

	"github.com/astokes/fable/internal/game/theme"
)

// Meta is the world's presentation header: the game title, the greeting
// shown at session start, the credits shown at an ending, and the room a
// new session begins in.
type Meta struct {
	Title     string
	Greeting  string
	Credits   string
	StartRoom Title
}

// World is the immutable, validated entity graph for one game. Built once
// by New; never mutated afterwards, so it may be shared read-only and
// runtime lookups may treat missing ids as broken invariants.
type World struct {
	Meta      Meta
	Theme     theme.Theme
	Language  theme.Language
	Actions   map[Identifier]*Action
	Rooms     map[Title]map[Identifier]*Room
	Dialogues map[Identifier]map[Identifier]*Dialogue
}

// New validates the parsed entity maps as a whole and assembles the World.
//
// Validation order: the default-variant check fails fast on the first room
// or dialogue name lacking a variant-less entry; dangling references are
// then collected across all three target groups (dialogues, actions,
// rooms); a sequence action containing another sequence fails immediately;
// finally all dangling references are reported together in one
// MissingEntitiesError.
func New(
	meta Meta,
	th theme.Theme,
	lang theme.Language,
	characters map[Title]*Character,
	actions map[Identifier]*Action,
	responses map[Identifier]*Response,
	rooms map[Title]map[Identifier]*Room,
	dialogues map[Identifier]map[Identifier]*Dialogue,
) (*World, error) {
	for _, name := range sortedKeys(rooms) {
		if _, ok := rooms[name][Identifier("")]; !ok {
			return nil, &DefaultVariantError{Kind: KindRoom, ID: string(name)}
		}
	}
	for _, name := range sortedKeys(dialogues) {
		if _, ok := dialogues[name][Identifier("")]; !ok {
			return nil, &DefaultVariantError{Kind: KindDialogue, ID: string(name)}
		}
	}

	missingDialogues := make(map[string]bool)
	missingActions := make(map[string]bool)
	missingRooms := make(map[string]bool)

	for _, char := range characters {
		if _, ok := dialogues[char.StartDialogue]; !ok {
			missingDialogues[string(char.StartDialogue)] = true
		}
	}
	for _, response := range responses {
		if response.LeadsTo == "" {
			continue
		}
		if _, ok := dialogues[response.LeadsTo]; !ok {
			missingDialogues[string(response.LeadsTo)] = true
		}
	}

	for _, variants := range rooms {
		for _, room := range variants {
			for _, id := range room.Actions {
				if _, ok := actions[id]; !ok {
					missingActions[string(id)] = true
				}
			}
			for _, target := range room.Exits {
				if _, ok := rooms[target]; !ok {
					missingRooms[string(target)] = true
				}
			}
		}
	}
	if _, ok := rooms[meta.StartRoom]; !ok {
		missingRooms[string(meta.StartRoom)] = true
	}

	for _, name := range sortedKeys(actions) {
		action := actions[name]
		switch action.Kind {
		case ActionSequence:
			for _, member := range action.Sequence {
				child, ok := actions[member]
				if !ok {
					missingActions[string(member)] = true
					continue
				}
				if child.Kind == ActionSequence {
					return nil, &CircularReferenceError{Parent: action.Name, Child: member}
				}
			}
		case ActionTeleport:
			if _, ok := rooms[action.RoomName]; !ok {
				missingRooms[string(action.RoomName)] = true
			}
		}
	}

	if len(missingDialogues) > 0 || len(missingActions) > 0 || len(missingRooms) > 0 {
		return nil, &MissingEntitiesError{
			Dialogues: sortedSet(missingDialogues),
			Actions:   sortedSet(missingActions),
			Rooms:     sortedSet(missingRooms),
		}
	}

	return &World{
		Meta:      meta,
		Theme:     th,
		Language:  lang,
		Actions:   actions,
		Rooms:     rooms,
		Dialogues: dialogues,
	}, nil
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedSet(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
