// Package world loads a declarative world script into a fully
// cross-referenced, validated in-memory graph: value types, records, one
// parser per entity kind, and whole-graph assembly validation.
package world

import (
	"regexp"
	"strings"
)

// Identifier is a lowercase snake_case name. It keys items, actions,
// dialogues, responses, and exit directions. The zero value marks an
// absent optional identifier (e.g. the default variant).
type Identifier string

// Title is a Title Case name of space-separated capitalized words. It keys
// rooms and characters.
type Title string

var (
	identifierPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	titlePattern      = regexp.MustCompile(`^[A-Z][A-Za-z_ ]*$`)
)

// ParseIdentifier validates s against the identifier grammar and
// normalizes it to snake_case (dashes become underscores).
//
// Postcondition: two inputs that normalize identically parse to equal
// Identifiers.
func ParseIdentifier(s string) (Identifier, error) {
	if !identifierPattern.MatchString(s) {
		return "", &ConversionError{Value: s, Target: "Identifier"}
	}
	return Identifier(strings.ReplaceAll(s, "-", "_")), nil
}

// ParseTitle validates s against the title grammar and normalizes it to
// Title Case: words separated by single spaces, each starting with an
// uppercase letter. Underscores separate words like spaces do, so
// "Wood_shed" and "Wood Shed" normalize identically, and "WoodShed"
// is preserved as a single word.
func ParseTitle(s string) (Title, error) {
	if !titlePattern.MatchString(s) {
		return "", &ConversionError{Value: s, Target: "Title"}
	}
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' '
	})
	if len(words) == 0 {
		return "", &ConversionError{Value: s, Target: "Title"}
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return Title(strings.Join(words, " ")), nil
}

func (i Identifier) String() string { return string(i) }

func (t Title) String() string { return string(t) }

// Display returns the identifier with underscores opened into spaces, for
// presenting machine names to players.
func (i Identifier) Display() string {
	return strings.ReplaceAll(string(i), "_", " ")
}
