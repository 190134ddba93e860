package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Teknologi", "teknologi"},
		{"spaces become hyphens", "Berita Politik Terkini", "berita-politik-terkini"},
		{"special characters stripped", "AI & Indonesia 2024!", "ai-indonesia-2024"},
		{"underscores collapse", "foo__bar baz", "foo-bar-baz"},
		{"leading and trailing noise", "  --Hello World--  ", "hello-world"},
		{"mixed separators", "a _- b", "a-b"},
		{"all special characters", "!!!???", ""},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Perkembangan Teknologi AI di Indonesia Tahun 2024",
		"AI & Indonesia 2024!",
		"already-slugified-string",
	}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "first_name", Underscore("FirstName"))
	assert.Equal(t, "username", Underscore("Username"))
}
