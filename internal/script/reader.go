// Package script reads fable world scripts: a line-oriented text format with
// bracketed section headers, key=value properties, and triple-quoted
// multi-line values.
package script

import (
	"fmt"
	"os"
	"strings"
)

// Property is a single key=value pair within a section.
type Property struct {
	// Key is the property name, trimmed of surrounding whitespace.
	Key string
	// Value is the property value. Multi-line values are folded into a
	// single string with embedded newlines escaped as literal \n.
	Value string
	// Line is the 1-based line number the property starts on.
	Line int
}

// Section groups the properties under one bracketed header. The section
// holding properties that appear before any header (the global section)
// has an empty Header.
type Section struct {
	// Header is the raw text between the brackets, e.g. "Room:Cell|flooded".
	Header string
	// Line is the 1-based line number of the header (1 for the global section).
	Line int
	// Props are the section's properties in source order.
	Props []Property
}

// Lookup returns the value for key and whether it is present. When a key
// appears more than once in a section, the last occurrence wins.
func (s *Section) Lookup(key string) (string, bool) {
	for i := len(s.Props) - 1; i >= 0; i-- {
		if s.Props[i].Key == key {
			return s.Props[i].Value, true
		}
	}
	return "", false
}

// Keys returns the distinct property keys in first-seen order.
func (s *Section) Keys() []string {
	seen := make(map[string]bool, len(s.Props))
	keys := make([]string, 0, len(s.Props))
	for _, p := range s.Props {
		if !seen[p.Key] {
			seen[p.Key] = true
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// Load reads and tokenizes the script file at path.
//
// Precondition: path must point to a readable UTF-8 text file.
// Postcondition: returns the tokenized sections or a non-nil error.
func Load(path string) ([]Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script file %s: %w", path, err)
	}
	secs, err := Tokenize(string(data))
	if err != nil {
		return nil, fmt.Errorf("tokenizing %s: %w", path, err)
	}
	return secs, nil
}

// Tokenize splits script text into an ordered list of sections. The first
// returned section is always the global section; it may have no properties.
// Blank lines and lines starting with ';' or '#' are skipped. A value
// opening with """ folds all lines up to the closing """ into one value,
// with newlines escaped as literal \n.
func Tokenize(text string) ([]Section, error) {
	lines := strings.Split(text, "\n")
	sections := []Section{{Line: 1}}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
		if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") {
			if !strings.HasSuffix(trimmed, "]") {
				return nil, fmt.Errorf("line %d: unclosed section header %q", i+1, trimmed)
			}
			header := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			if header == "" {
				return nil, fmt.Errorf("line %d: empty section header", i+1)
			}
			sections = append(sections, Section{Header: header, Line: i + 1})
			continue
		}

		eq := strings.IndexByte(trimmed, '=')
		if eq < 0 {
			return nil, fmt.Errorf("line %d: property line %q has no '='", i+1, trimmed)
		}
		key := strings.TrimSpace(trimmed[:eq])
		if key == "" {
			return nil, fmt.Errorf("line %d: property with empty key", i+1)
		}
		value := strings.TrimSpace(trimmed[eq+1:])
		propLine := i + 1

		if strings.HasPrefix(value, `"""`) {
			folded, next, err := foldTripleQuoted(lines, i, value)
			if err != nil {
				return nil, err
			}
			value = folded
			i = next
		}

		cur := &sections[len(sections)-1]
		cur.Props = append(cur.Props, Property{Key: key, Value: value, Line: propLine})
	}

	return sections, nil
}

// foldTripleQuoted collapses a triple-quoted value starting on lines[start]
// into a single string. opening is the remainder of the property line
// beginning with the opening quotes. Returns the folded value and the index
// of the line holding the closing quotes.
func foldTripleQuoted(lines []string, start int, opening string) (string, int, error) {
	rest := opening[3:]

	// Opening and closing quotes on the same line.
	if len(rest) >= 3 && strings.HasSuffix(rest, `"""`) {
		return rest[:len(rest)-3], start, nil
	}

	var parts []string
	if rest != "" {
		parts = append(parts, rest)
	}
	for j := start + 1; j < len(lines); j++ {
		line := strings.TrimSuffix(lines[j], "\r")
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, `"""`) {
			closing := strings.TrimSpace(strings.TrimSuffix(trimmed, `"""`))
			if closing != "" {
				parts = append(parts, closing)
			}
			return strings.Join(parts, `\n`), j, nil
		}
		parts = append(parts, line)
	}
	return "", 0, fmt.Errorf("line %d: unterminated triple-quoted value", start+1)
}
