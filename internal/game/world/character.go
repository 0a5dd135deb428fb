package world

// Character is a person the player can talk to. StartDialogue names the
// dialogue opened when a conversation begins; its existence is verified at
// world assembly.
type Character struct {
	Name          Title
	StartDialogue Identifier
}

// parseCharacters resolves every Character record into a name-keyed map.
func parseCharacters(records []*Record) (map[Title]*Character, error) {
	characters := make(map[Title]*Character)
	for _, rec := range recordsOf(records, KindCharacter) {
		if err := rec.CheckKeys([]string{"start_dialogue"}, nil); err != nil {
			return nil, err
		}
		name, err := ParseTitle(rec.Name)
		if err != nil {
			return nil, err
		}
		raw, err := rec.Require("start_dialogue")
		if err != nil {
			return nil, err
		}
		start, err := ParseIdentifier(raw)
		if err != nil {
			return nil, err
		}
		characters[name] = &Character{Name: name, StartDialogue: start}
	}
	return characters, nil
}
