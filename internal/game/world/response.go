package world

import "strings"

// Response is one choice a player can pick inside a dialogue. LeadsTo
// optionally names the next dialogue (verified at world assembly);
// Triggers optionally fires an action; Requires gates visibility.
type Response struct {
	Name     Identifier
	Text     string
	LeadsTo  Identifier // "" = conversation ends
	Triggers *Action
	Requires []Requirement
}

// parseResponses resolves every Response record into a name-keyed map.
// Triggered actions must already exist in the action map; leads_to targets
// are only checked at world assembly.
func parseResponses(records []*Record, actions map[Identifier]*Action, items map[Identifier]*Item, rooms map[Title]map[Identifier]*Room) (map[Identifier]*Response, error) {
	responses := make(map[Identifier]*Response)
	for _, rec := range recordsOf(records, KindResponse) {
		if err := rec.CheckKeys([]string{"text"}, []string{"leads_to", "triggers", "requires"}); err != nil {
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

		response := &Response{Name: name, Text: text}

		if raw, ok := rec.Optional("leads_to"); ok {
			response.LeadsTo, err = ParseIdentifier(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
		}

		if raw, ok := rec.Optional("triggers"); ok {
			id, err := ParseIdentifier(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			action, found := actions[id]
			if !found {
				return nil, &NotFoundError{Kind: KindAction, ID: string(id)}
			}
			response.Triggers = action
		}

		response.Requires, err = parseRequirements(rec, "requires", items, rooms)
		if err != nil {
			return nil, err
		}

		responses[name] = response
	}
	return responses, nil
}
