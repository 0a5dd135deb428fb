package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/astokes/fable/internal/script"
)

// Kind identifies a section kind in a world script.
type Kind string

// Known section kinds.
const (
	KindItem      Kind = "Item"
	KindCharacter Kind = "Character"
	KindRoom      Kind = "Room"
	KindAction    Kind = "Action"
	KindResponse  Kind = "Response"
	KindDialogue  Kind = "Dialogue"
	KindTheme     Kind = "Theme"
	KindLanguage  Kind = "Language"

	// KindGame names the global (header-less) section in error reports.
	KindGame Kind = "Game"
)

// entityKinds are the kinds whose sections carry a qualified name.
var entityKinds = map[Kind]bool{
	KindItem:      true,
	KindCharacter: true,
	KindRoom:      true,
	KindAction:    true,
	KindResponse:  true,
	KindDialogue:  true,
}

// singletonKinds are the kinds that appear at most once and carry no name.
var singletonKinds = map[Kind]bool{
	KindTheme:    true,
	KindLanguage: true,
}

// Record is one typed section of a world script: its kind, qualified name,
// optional variant suffix, and property access helpers.
type Record struct {
	// Kind is the section kind, e.g. KindRoom.
	Kind Kind
	// Name is the name part of the header as authored ("" for singletons).
	Name string
	// Variant is the normalized variant suffix; "" means the default variant.
	Variant Identifier

	section *script.Section
}

// QualifiedName returns the record's name with its variant suffix, matching
// the form used in headers and cross-references.
func (r *Record) QualifiedName() string {
	if r.Variant == "" {
		return r.Name
	}
	return r.Name + "|" + string(r.Variant)
}

// Require returns the value of a required property, or a
// MissingPropertyError naming the record if the key is absent.
func (r *Record) Require(key string) (string, error) {
	v, ok := r.section.Lookup(key)
	if !ok {
		return "", &MissingPropertyError{Kind: r.Kind, Property: key, ID: r.QualifiedName()}
	}
	return v, nil
}

// Optional returns the value of a property and whether it is present.
func (r *Record) Optional(key string) (string, bool) {
	return r.section.Lookup(key)
}

// List returns a comma-separated property split into trimmed items, with
// empty items dropped. An absent or empty property yields nil.
func (r *Record) List(key string) []string {
	v, ok := r.section.Lookup(key)
	if !ok {
		return nil
	}
	var items []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// CheckKeys verifies that every required key is present and that no key
// outside required and optional appears, reporting all violations in one
// PropertySetError.
func (r *Record) CheckKeys(required, optional []string) error {
	allowed := make(map[string]bool, len(required)+len(optional))
	for _, k := range required {
		allowed[k] = true
	}
	for _, k := range optional {
		allowed[k] = true
	}

	found := make(map[string]bool)
	var unexpected []string
	for _, k := range r.section.Keys() {
		found[k] = true
		if !allowed[k] {
			unexpected = append(unexpected, k)
		}
	}

	var missing []string
	for _, k := range required {
		if !found[k] {
			missing = append(missing, k)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		sort.Strings(missing)
		sort.Strings(unexpected)
		return &PropertySetError{
			Kind:       r.Kind,
			ID:         r.QualifiedName(),
			Missing:    missing,
			Unexpected: unexpected,
		}
	}
	return nil
}

// ExtractRecords turns tokenized sections into typed records, validating
// every header against the known section kinds before any entity parsing
// begins. The first returned value is the global (header-less) section.
func ExtractRecords(secs []script.Section) (*script.Section, []*Record, error) {
	if len(secs) == 0 {
		return nil, nil, fmt.Errorf("script has no sections")
	}
	global := &secs[0]

	var records []*Record
	for i := range secs[1:] {
		sec := &secs[i+1]
		rec, err := extractRecord(sec)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	return global, records, nil
}

func extractRecord(sec *script.Section) (*Record, error) {
	kindText, rest, hasName := strings.Cut(sec.Header, ":")
	kind := Kind(strings.TrimSpace(kindText))

	if singletonKinds[kind] {
		if hasName {
			return nil, fmt.Errorf("line %d: section %q takes no name", sec.Line, sec.Header)
		}
		return &Record{Kind: kind, section: sec}, nil
	}

	if !entityKinds[kind] {
		return nil, &UnknownSectionError{Header: sec.Header, Line: sec.Line}
	}
	if !hasName || strings.TrimSpace(rest) == "" {
		return nil, fmt.Errorf("line %d: section %q has no name", sec.Line, sec.Header)
	}

	name, variantText, hasVariant := strings.Cut(rest, "|")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("line %d: section %q has no name", sec.Line, sec.Header)
	}

	var variant Identifier
	if hasVariant {
		variantText = strings.TrimSpace(variantText)
		v, err := ParseIdentifier(variantText)
		if err != nil {
			return nil, fmt.Errorf("line %d: section %q: malformed variant: %w", sec.Line, sec.Header, err)
		}
		variant = v
	}

	return &Record{Kind: kind, Name: name, Variant: variant, section: sec}, nil
}

// recordsOf filters records down to one section kind, preserving order.
func recordsOf(records []*Record, kind Kind) []*Record {
	var out []*Record
	for _, r := range records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
