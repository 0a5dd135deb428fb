package world

// Dialogue is one piece of character speech at one specific variant, with
// the responses the player may pick. Dialogues are keyed by (id, variant);
// every id has a default (variant-less) entry, enforced at world assembly.
// Requires steers variant selection at runtime.
type Dialogue struct {
	Name      Identifier
	Variant   Identifier // "" = default
	Text      string
	Responses []*Response
	Requires  []Requirement
}

// QualifiedName returns "id" or "id|variant".
func (d *Dialogue) QualifiedName() string {
	return qualified(string(d.Name), d.Variant)
}

// parseDialogues resolves every Dialogue record into a name-then-variant
// keyed map. Responses must already exist in the response map.
func parseDialogues(records []*Record, responses map[Identifier]*Response, items map[Identifier]*Item, rooms map[Title]map[Identifier]*Room) (map[Identifier]map[Identifier]*Dialogue, error) {
	dialogues := make(map[Identifier]map[Identifier]*Dialogue)
	for _, rec := range recordsOf(records, KindDialogue) {
		if err := rec.CheckKeys([]string{"text"}, []string{"response", "requires"}); err != nil {
			return nil, err
		}
		name, err := ParseIdentifier(rec.Name)
		if err != nil {
			return nil, err
		}
		text, err := rec.Require("text")
		if err != nil {
			return nil, err
		}

		dialogue := &Dialogue{Name: name, Variant: rec.Variant, Text: text}

		for _, raw := range rec.List("response") {
			id, err := ParseIdentifier(raw)
			if err != nil {
				return nil, err
			}
			response, found := responses[id]
			if !found {
				return nil, &NotFoundError{Kind: KindResponse, ID: string(id)}
			}
			dialogue.Responses = append(dialogue.Responses, response)
		}

		dialogue.Requires, err = parseRequirements(rec, "requires", items, rooms)
		if err != nil {
			return nil, err
		}

		if dialogues[name] == nil {
			dialogues[name] = make(map[Identifier]*Dialogue)
		}
		dialogues[name][rec.Variant] = dialogue
	}
	return dialogues, nil
}
