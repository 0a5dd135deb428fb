package world

import (
	"fmt"
	"strings"

	"github.com/astokes/fable/internal/game/theme"
	"github.com/astokes/fable/internal/script"
)

// globalKeys are the properties allowed in the header-less global section.
var globalKeys = map[string]bool{
	"title":      true,
	"greeting":   true,
	"credits":    true,
	"start_room": true,
}

// Load reads, tokenizes, parses, and assembles the world script at path.
func Load(path string) (*World, error) {
	secs, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(secs)
	if err != nil {
		return nil, fmt.Errorf("loading world from %s: %w", path, err)
	}
	return w, nil
}

// Parse resolves tokenized sections into a validated World. Entity kinds
// are parsed in dependency order: items and characters first, then rooms
// (which reference characters), actions (rooms, items), responses
// (actions, items, rooms), and dialogues (responses, items, rooms), before
// whole-graph assembly. That ordering is a hard precondition of the
// per-kind parsers and is sealed inside this function.
func Parse(secs []script.Section) (*World, error) {
	global, records, err := ExtractRecords(secs)
	if err != nil {
		return nil, err
	}

	meta, err := parseMeta(global)
	if err != nil {
		return nil, err
	}
	th, err := parseTheme(records)
	if err != nil {
		return nil, err
	}
	lang, err := parseLanguage(records)
	if err != nil {
		return nil, err
	}

	items, err := parseItems(records)
	if err != nil {
		return nil, err
	}
	characters, err := parseCharacters(records)
	if err != nil {
		return nil, err
	}
	rooms, err := parseRooms(records, characters)
	if err != nil {
		return nil, err
	}
	actions, err := parseActions(records, rooms, items)
	if err != nil {
		return nil, err
	}
	responses, err := parseResponses(records, actions, items, rooms)
	if err != nil {
		return nil, err
	}
	dialogues, err := parseDialogues(records, responses, items, rooms)
	if err != nil {
		return nil, err
	}

	return New(meta, th, lang, characters, actions, responses, rooms, dialogues)
}

// parseMeta reads the global properties. title and start_room are
// required; greeting and credits default to empty.
func parseMeta(global *script.Section) (Meta, error) {
	for _, key := range global.Keys() {
		if !globalKeys[key] {
			return Meta{}, fmt.Errorf("unknown global property %q", key)
		}
	}

	title, ok := global.Lookup("title")
	if !ok {
		return Meta{}, &MissingPropertyError{Kind: KindGame, Property: "title", ID: "global"}
	}
	startRaw, ok := global.Lookup("start_room")
	if !ok {
		return Meta{}, &MissingPropertyError{Kind: KindGame, Property: "start_room", ID: "global"}
	}
	startRoom, err := ParseTitle(strings.TrimSpace(startRaw))
	if err != nil {
		return Meta{}, err
	}

	meta := Meta{Title: title, StartRoom: startRoom}
	meta.Greeting, _ = global.Lookup("greeting")
	meta.Credits, _ = global.Lookup("credits")
	return meta, nil
}

// parseTheme applies the optional [Theme] section over the default theme.
func parseTheme(records []*Record) (theme.Theme, error) {
	th := theme.Default()
	recs := recordsOf(records, KindTheme)
	if len(recs) == 0 {
		return th, nil
	}
	if len(recs) > 1 {
		return th, fmt.Errorf("multiple [Theme] sections")
	}
	rec := recs[0]

	fields := th.Fields()
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	if err := rec.CheckKeys(nil, keys); err != nil {
		return th, err
	}
	for key, field := range fields {
		raw, ok := rec.Optional(key)
		if !ok {
			continue
		}
		color, err := theme.ParseColor(strings.TrimSpace(raw))
		if err != nil {
			return th, &ConversionError{Value: raw, Target: "Color"}
		}
		*field = color
	}
	return th, nil
}

// parseLanguage applies the optional [Language] section over the default
// labels.
func parseLanguage(records []*Record) (theme.Language, error) {
	lang := theme.DefaultLanguage()
	recs := recordsOf(records, KindLanguage)
	if len(recs) == 0 {
		return lang, nil
	}
	if len(recs) > 1 {
		return lang, fmt.Errorf("multiple [Language] sections")
	}
	rec := recs[0]

	fields := lang.Fields()
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	if err := rec.CheckKeys(nil, keys); err != nil {
		return lang, err
	}
	for key, field := range fields {
		if raw, ok := rec.Optional(key); ok {
			*field = raw
		}
	}
	return lang, nil
}
