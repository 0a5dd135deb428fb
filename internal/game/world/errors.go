package world

import (
	"fmt"
	"strings"
)

// ConversionError reports a value that fails the grammar of a value type
// (Identifier, Title, Color).
type ConversionError struct {
	// Value is the offending input.
	Value string
	// Target is the name of the type the value failed to convert to.
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Value, e.Target)
}

// MissingPropertyError reports a required property absent from a record.
type MissingPropertyError struct {
	// Kind is the entity kind of the record, e.g. "Room".
	Kind Kind
	// Property is the missing property name.
	Property string
	// ID is the qualified record name, e.g. "Cell" or "Cell|flooded".
	ID string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s %q: missing required property %q", e.Kind, e.ID, e.Property)
}

// PropertySetError reports a record whose key set does not match the
// allowed required and optional keys.
type PropertySetError struct {
	Kind Kind
	ID   string
	// Missing lists required keys absent from the record.
	Missing []string
	// Unexpected lists present keys outside the allowed set.
	Unexpected []string
}

func (e *PropertySetError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", e.Missing))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected %v", e.Unexpected))
	}
	return fmt.Sprintf("%s %q: invalid property set: %s", e.Kind, e.ID, strings.Join(parts, ", "))
}

// NotFoundError reports a cross-reference that does not resolve in its
// entity map at the point of lookup.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IncompleteError reports a record that matches no known variant shape,
// e.g. an Action with none of the trigger properties.
type IncompleteError struct {
	Kind   Kind
	ID     string
	Reason string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s %q: incomplete: %s", e.Kind, e.ID, e.Reason)
}

// InvalidValueError reports a property whose value does not match its
// expected grammar, e.g. an unknown requirement kind.
type InvalidValueError struct {
	Kind     Kind
	ID       string
	Property string
	Value    string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s %q: invalid value %q for property %q", e.Kind, e.ID, e.Value, e.Property)
}

// DefaultVariantError reports a Room or Dialogue name that lacks a default
// (variant-less) entry.
type DefaultVariantError struct {
	Kind Kind
	ID   string
}

func (e *DefaultVariantError) Error() string {
	return fmt.Sprintf("%s %q has no default variant", e.Kind, e.ID)
}

// CircularReferenceError reports a sequence action that includes another
// sequence action among its members.
type CircularReferenceError struct {
	Parent Identifier
	Child  Identifier
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("sequence action %q references sequence action %q", e.Parent, e.Child)
}

// UnknownSectionError reports a section header naming a kind outside the
// known entity kinds.
type UnknownSectionError struct {
	Header string
	Line   int
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("line %d: unknown section %q", e.Line, e.Header)
}

// MissingEntitiesError is the aggregated world-assembly report of every
// dangling reference, grouped by the kind of the missing target. Each list
// is sorted and de-duplicated.
type MissingEntitiesError struct {
	Dialogues []string
	Actions   []string
	Rooms     []string
}

func (e *MissingEntitiesError) Error() string {
	var parts []string
	if len(e.Dialogues) > 0 {
		parts = append(parts, fmt.Sprintf("dialogues %v", e.Dialogues))
	}
	if len(e.Actions) > 0 {
		parts = append(parts, fmt.Sprintf("actions %v", e.Actions))
	}
	if len(e.Rooms) > 0 {
		parts = append(parts, fmt.Sprintf("rooms %v", e.Rooms))
	}
	return "missing entities: " + strings.Join(parts, "; ")
}
