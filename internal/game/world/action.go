package world

import "strings"

// ActionKind discriminates the Action union.
type ActionKind string

// Action kinds, named after their trigger property.
const (
	ActionChangeRoom  ActionKind = "change_room"
	ActionReplaceItem ActionKind = "replace_item"
	ActionGiveItem    ActionKind = "give_item"
	ActionTakeItem    ActionKind = "take_item"
	ActionTeleport    ActionKind = "teleport"
	ActionSequence    ActionKind = "sequence"
)

// triggerKeys are the mutually exclusive properties that select an action's
// kind. Exactly one must be present.
var triggerKeys = []string{
	string(ActionChangeRoom),
	string(ActionReplaceItem),
	string(ActionGiveItem),
	string(ActionTakeItem),
	string(ActionTeleport),
	string(ActionSequence),
}

// Action is a state-mutating operation invocable from a room or a response.
// Kind selects which of the payload fields are meaningful.
type Action struct {
	Name        Identifier
	Description string
	Kind        ActionKind
	// Required is the gate item consumed on success, for the kinds that
	// carry one (change_room, give_item, teleport, sequence).
	Required *Item
	// Room is the ChangeRoom target; its Variant field is the variant the
	// action activates.
	Room *Room
	// Original and Replacement are the ReplaceItem payload.
	Original    *Item
	Replacement *Item
	// Items are the GiveItem/TakeItem payload.
	Items []*Item
	// RoomName is the Teleport destination, always entered at the default
	// variant. Verified at world assembly.
	RoomName Title
	// Sequence lists member action ids applied in order. Verified at world
	// assembly, where sequences of sequences are rejected.
	Sequence []Identifier
}

// parseActions resolves every Action record into a name-keyed map. A
// change_room action whose target room variant is not present in the room
// map is skipped without error; every other dangling reference fails here.
func parseActions(records []*Record, rooms map[Title]map[Identifier]*Room, items map[Identifier]*Item) (map[Identifier]*Action, error) {
	actions := make(map[Identifier]*Action)
	for _, rec := range recordsOf(records, KindAction) {
		if err := rec.CheckKeys([]string{"description"}, append([]string{"required"}, triggerKeys...)); err != nil {
			return nil, err
		}
		name, err := ParseIdentifier(rec.Name)
		if err != nil {
			return nil, err
		}
		description, err := rec.Require("description")
		if err != nil {
			return nil, err
		}

		action := &Action{Name: name, Description: description}

		if raw, ok := rec.Optional("required"); ok {
			id, err := ParseIdentifier(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			item, found := items[id]
			if !found {
				return nil, &NotFoundError{Kind: KindItem, ID: string(id)}
			}
			action.Required = item
		}

		var present []string
		for _, key := range triggerKeys {
			if _, ok := rec.Optional(key); ok {
				present = append(present, key)
			}
		}
		switch len(present) {
		case 0:
			return nil, &IncompleteError{Kind: KindAction, ID: rec.QualifiedName(), Reason: "no trigger property"}
		case 1:
		default:
			return nil, &IncompleteError{Kind: KindAction, ID: rec.QualifiedName(), Reason: "multiple trigger properties: " + strings.Join(present, ", ")}
		}
		action.Kind = ActionKind(present[0])

		skip, err := parseTrigger(rec, action, rooms, items)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		actions[name] = action
	}
	return actions, nil
}

// parseTrigger fills the kind-specific payload of action from its trigger
// property. Returns skip=true for a change_room whose target room is not in
// the room map.
func parseTrigger(rec *Record, action *Action, rooms map[Title]map[Identifier]*Room, items map[Identifier]*Item) (bool, error) {
	value, _ := rec.Optional(string(action.Kind))
	value = strings.TrimSpace(value)

	switch action.Kind {
	case ActionChangeRoom:
		nameText, variantText, hasVariant := strings.Cut(value, "->")
		name, err := ParseTitle(strings.TrimSpace(nameText))
		if err != nil {
			return false, err
		}
		var variant Identifier
		if hasVariant {
			variant, err = ParseIdentifier(strings.TrimSpace(variantText))
			if err != nil {
				return false, err
			}
		}
		room, found := rooms[name][variant]
		if !found {
			return true, nil
		}
		action.Room = room

	case ActionReplaceItem:
		fromText, toText, ok := strings.Cut(value, "->")
		if !ok {
			return false, &InvalidValueError{Kind: KindAction, ID: rec.QualifiedName(), Property: string(ActionReplaceItem), Value: value}
		}
		original, err := lookupItem(items, strings.TrimSpace(fromText))
		if err != nil {
			return false, err
		}
		replacement, err := lookupItem(items, strings.TrimSpace(toText))
		if err != nil {
			return false, err
		}
		action.Original = original
		action.Replacement = replacement

	case ActionGiveItem, ActionTakeItem:
		for _, raw := range rec.List(string(action.Kind)) {
			item, err := lookupItem(items, raw)
			if err != nil {
				return false, err
			}
			action.Items = append(action.Items, item)
		}

	case ActionTeleport:
		name, err := ParseTitle(value)
		if err != nil {
			return false, err
		}
		action.RoomName = name

	case ActionSequence:
		for _, raw := range rec.List(string(ActionSequence)) {
			id, err := ParseIdentifier(raw)
			if err != nil {
				return false, err
			}
			action.Sequence = append(action.Sequence, id)
		}
	}
	return false, nil
}

func lookupItem(items map[Identifier]*Item, raw string) (*Item, error) {
	id, err := ParseIdentifier(raw)
	if err != nil {
		return nil, err
	}
	item, found := items[id]
	if !found {
		return nil, &NotFoundError{Kind: KindItem, ID: string(id)}
	}
	return item, nil
}
