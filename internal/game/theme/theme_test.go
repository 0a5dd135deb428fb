package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"six digit", "#1a2b3c", false},
		{"three digit", "#fff", false},
		{"uppercase", "#FFAA00", false},
		{"missing hash", "1a2b3c", true},
		{"four digits", "#ffff", true},
		{"non-hex", "#gggggg", true},
		{"named color", "crimson", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Color(tc.input), c)
		})
	}
}

func TestColorTerminal(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#fff"), Color("#fff").Terminal())
}

func TestThemeFieldsCoverEveryColor(t *testing.T) {
	th := Default()
	fields := th.Fields()
	assert.Len(t, fields, 7)

	// Writing through a field pointer must change the struct.
	*fields["title"] = "#000"
	assert.Equal(t, Color("#000"), th.Title)

	for key, c := range fields {
		assert.NotEmpty(t, *c, "default for %q must be set", key)
	}
}

func TestLanguageFieldsCoverEveryLabel(t *testing.T) {
	lang := DefaultLanguage()
	fields := lang.Fields()
	assert.Len(t, fields, 19)

	*fields["quit"] = "Leave"
	assert.Equal(t, "Leave", lang.Quit)

	for key, label := range fields {
		assert.NotEmpty(t, *label, "default for %q must be set", key)
	}
}
