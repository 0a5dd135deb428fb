package world

import "strings"

// RequirementKind discriminates the Requirement union.
type RequirementKind string

// Requirement kinds.
const (
	RequireHasItem     RequirementKind = "has_item"
	RequireDoesNotHave RequirementKind = "does_not_have"
	RequireRoomVariant RequirementKind = "room_variant"
)

// Requirement is a boolean precondition over player state. HasItem and
// DoesNotHave carry an item; RoomVariant carries a room whose Variant field
// encodes the expected active variant ("" meaning no override active).
type Requirement struct {
	Kind RequirementKind
	Item *Item
	Room *Room
}

// parseRequirements parses the comma-separated requirement list in the
// named property of rec. Each entry is "<kind>:<rest>" with kind matched
// case-insensitively. An absent or empty property yields no requirements.
func parseRequirements(rec *Record, key string, items map[Identifier]*Item, rooms map[Title]map[Identifier]*Room) ([]Requirement, error) {
	var reqs []Requirement
	for _, raw := range rec.List(key) {
		kindText, rest, ok := strings.Cut(raw, ":")
		if !ok {
			return nil, &InvalidValueError{Kind: rec.Kind, ID: rec.QualifiedName(), Property: key, Value: raw}
		}
		rest = strings.TrimSpace(rest)

		switch RequirementKind(strings.ToLower(strings.TrimSpace(kindText))) {
		case RequireHasItem, RequireDoesNotHave:
			kind := RequirementKind(strings.ToLower(strings.TrimSpace(kindText)))
			id, err := ParseIdentifier(rest)
			if err != nil {
				return nil, err
			}
			item, found := items[id]
			if !found {
				return nil, &NotFoundError{Kind: KindItem, ID: string(id)}
			}
			reqs = append(reqs, Requirement{Kind: kind, Item: item})

		case RequireRoomVariant:
			name, variant, err := parseRoomRef(rest)
			if err != nil {
				return nil, err
			}
			room, found := rooms[name][variant]
			if !found {
				return nil, &NotFoundError{Kind: KindRoom, ID: qualified(string(name), variant)}
			}
			reqs = append(reqs, Requirement{Kind: RequireRoomVariant, Room: room})

		default:
			return nil, &InvalidValueError{Kind: rec.Kind, ID: rec.QualifiedName(), Property: key, Value: raw}
		}
	}
	return reqs, nil
}

// parseRoomRef parses a "<RoomTitle>[|variant]" reference.
func parseRoomRef(s string) (Title, Identifier, error) {
	nameText, variantText, hasVariant := strings.Cut(s, "|")
	name, err := ParseTitle(strings.TrimSpace(nameText))
	if err != nil {
		return "", "", err
	}
	var variant Identifier
	if hasVariant {
		variant, err = ParseIdentifier(strings.TrimSpace(variantText))
		if err != nil {
			return "", "", err
		}
	}
	return name, variant, nil
}
