package world

import "strings"

// Room is a location at one specific variant. Rooms are keyed by
// (name, variant); every name has a default (variant-less) entry, enforced
// at world assembly.
type Room struct {
	Name    Title
	Variant Identifier // "" = default
	// Description is the text shown when the player is here.
	Description string
	// Characters are the people present in this room variant.
	Characters []*Character
	// Exits maps a direction to the name of the room it leads to. Exit
	// targets are verified at world assembly, not here.
	Exits map[Identifier]Title
	// Actions names the actions the player can perform here. Verified at
	// world assembly.
	Actions []Identifier
}

// IsTrap reports whether the room has no exits. Trap rooms end the game.
func (r *Room) IsTrap() bool {
	return len(r.Exits) == 0
}

// QualifiedName returns "Name" or "Name|variant".
func (r *Room) QualifiedName() string {
	return qualified(string(r.Name), r.Variant)
}

func qualified(name string, variant Identifier) string {
	if variant == "" {
		return name
	}
	return name + "|" + string(variant)
}

// parseRooms resolves every Room record into a name-then-variant keyed map.
// Characters must already exist in the character map; exit targets and
// action ids are only checked at world assembly.
func parseRooms(records []*Record, characters map[Title]*Character) (map[Title]map[Identifier]*Room, error) {
	rooms := make(map[Title]map[Identifier]*Room)
	for _, rec := range recordsOf(records, KindRoom) {
		if err := rec.CheckKeys([]string{"description"}, []string{"characters", "exits", "actions"}); err != nil {
			return nil, err
		}
		name, err := ParseTitle(rec.Name)
		if err != nil {
			return nil, err
		}
		description, err := rec.Require("description")
		if err != nil {
			return nil, err
		}

		var present []*Character
		for _, raw := range rec.List("characters") {
			charName, err := ParseTitle(raw)
			if err != nil {
				return nil, err
			}
			char, ok := characters[charName]
			if !ok {
				return nil, &NotFoundError{Kind: KindCharacter, ID: string(charName)}
			}
			present = append(present, char)
		}

		exits := make(map[Identifier]Title)
		for _, raw := range rec.List("exits") {
			dirText, target, ok := strings.Cut(raw, ":")
			if !ok {
				return nil, &InvalidValueError{Kind: KindRoom, ID: rec.QualifiedName(), Property: "exits", Value: raw}
			}
			dir, err := ParseIdentifier(strings.TrimSpace(dirText))
			if err != nil {
				return nil, err
			}
			targetTitle, err := ParseTitle(strings.TrimSpace(target))
			if err != nil {
				return nil, err
			}
			exits[dir] = targetTitle
		}

		var actions []Identifier
		for _, raw := range rec.List("actions") {
			id, err := ParseIdentifier(raw)
			if err != nil {
				return nil, err
			}
			actions = append(actions, id)
		}

		if rooms[name] == nil {
			rooms[name] = make(map[Identifier]*Room)
		}
		rooms[name][rec.Variant] = &Room{
			Name:        name,
			Variant:     rec.Variant,
			Description: description,
			Characters:  present,
			Exits:       exits,
			Actions:     actions,
		}
	}
	return rooms, nil
}
