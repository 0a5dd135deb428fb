package world

// Item is a carryable object. Items are immutable after parsing and shared
// by pointer between rooms, actions, requirements, and inventories.
type Item struct {
	Name        Identifier
	Description string
}

// parseItems resolves every Item record into a name-keyed map.
func parseItems(records []*Record) (map[Identifier]*Item, error) {
	items := make(map[Identifier]*Item)
	for _, rec := range recordsOf(records, KindItem) {
		if err := rec.CheckKeys([]string{"description"}, nil); err != nil {
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
		items[name] = &Item{Name: name, Description: description}
	}
	return items, nil
}
