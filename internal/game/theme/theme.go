// Package theme holds the presentation settings of a world: UI colors and
// interface labels, both fully defaulted and overridable from the world
// script's [Theme] and [Language] sections.
package theme

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// Color is a CSS-style hex color string, e.g. "#1a2b3c" or "#fff".
type Color string

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor validates a CSS-style hex color string.
//
// Postcondition: returns a non-empty Color iff s matches #rgb or #rrggbb.
func ParseColor(s string) (Color, error) {
	if !colorPattern.MatchString(s) {
		return "", fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	return Color(s), nil
}

// Terminal returns the color in the form lipgloss styles accept.
func (c Color) Terminal() lipgloss.TerminalColor {
	return lipgloss.Color(string(c))
}

// Theme is the set of UI colors used by the terminal renderer.
type Theme struct {
	Title         Color
	Heading       Color
	Background    Color
	Text          Color
	Highlight     Color
	HighlightText Color
	Subdued       Color
}

// Default returns the theme used when a world declares no [Theme] section.
func Default() Theme {
	return Theme{
		Title:         "#ffaf00",
		Heading:       "#87d7ff",
		Background:    "#1c1c1c",
		Text:          "#d0d0d0",
		Highlight:     "#5f5f87",
		HighlightText: "#eeeeee",
		Subdued:       "#767676",
	}
}

// Fields maps [Theme] property keys to the corresponding color fields,
// for field-by-field overriding from a script section.
func (t *Theme) Fields() map[string]*Color {
	return map[string]*Color{
		"title":          &t.Title,
		"heading":        &t.Heading,
		"background":     &t.Background,
		"text":           &t.Text,
		"highlight":      &t.Highlight,
		"highlight_text": &t.HighlightText,
		"subdued":        &t.Subdued,
	}
}

// Language is the set of interface labels shown around world-authored text.
type Language struct {
	Exits          string
	Characters     string
	Actions        string
	Inventory      string
	InventoryEmpty string
	TalkTo         string
	GoTo           string
	Perform        string
	Back           string
	Cancel         string
	Quit           string
	Continue       string
	TheEnd         string
	Credits        string
	Choose         string
	Locked         string
	NothingHappens string
	YouReceive     string
	YouLose        string
}

// DefaultLanguage returns the labels used when a world declares no
// [Language] section.
func DefaultLanguage() Language {
	return Language{
		Exits:          "Exits",
		Characters:     "Characters",
		Actions:        "Actions",
		Inventory:      "Inventory",
		InventoryEmpty: "You are carrying nothing.",
		TalkTo:         "Talk to",
		GoTo:           "Go",
		Perform:        "Do",
		Back:           "Back",
		Cancel:         "Cancel",
		Quit:           "Quit",
		Continue:       "Continue",
		TheEnd:         "The End",
		Credits:        "Credits",
		Choose:         "Choose",
		Locked:         "That does not work.",
		NothingHappens: "Nothing happens.",
		YouReceive:     "You receive",
		YouLose:        "You lose",
	}
}

// Fields maps [Language] property keys to the corresponding label fields,
// for field-by-field overriding from a script section.
func (l *Language) Fields() map[string]*string {
	return map[string]*string{
		"exits":           &l.Exits,
		"characters":      &l.Characters,
		"actions":         &l.Actions,
		"inventory":       &l.Inventory,
		"inventory_empty": &l.InventoryEmpty,
		"talk_to":         &l.TalkTo,
		"go_to":           &l.GoTo,
		"perform":         &l.Perform,
		"back":            &l.Back,
		"cancel":          &l.Cancel,
		"quit":            &l.Quit,
		"continue":        &l.Continue,
		"the_end":         &l.TheEnd,
		"credits":         &l.Credits,
		"choose":          &l.Choose,
		"locked":          &l.Locked,
		"nothing_happens": &l.NothingHappens,
		"you_receive":     &l.YouReceive,
		"you_lose":        &l.YouLose,
	}
}
