package textmod

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	const text = "analyze this diagram"

	t.Run("deterministic", func(t *testing.T) {
		a := Substitute(text, 0.5, 42)
		b := Substitute(text, 0.5, 42)
		assert.Equal(t, a, b)
	})

	t.Run("level_zero_is_identity", func(t *testing.T) {
		assert.Equal(t, text, Substitute(text, 0, 42))
	})

	t.Run("changes_text", func(t *testing.T) {
		got := Substitute(text, 0.5, 42)
		assert.NotEqual(t, text, got)
		assert.Equal(t, len([]rune(text)), len([]rune(got)), "substitution preserves rune count")
	})

	t.Run("no_eligible_characters", func(t *testing.T) {
		assert.Equal(t, "ZZZ 123", Substitute("ZZZ 123", 0.9, 42))
	})
}

func TestSpacing(t *testing.T) {
	const text = "please describe the contents of this image"

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Spacing(text, 0.8, 7), Spacing(text, 0.8, 7))
	})

	t.Run("level_zero_is_identity", func(t *testing.T) {
		assert.Equal(t, text, Spacing(text, 0, 7))
	})

	t.Run("inserts_alternate_spaces", func(t *testing.T) {
		got := Spacing(text, 1.0, 7)
		assert.NotEqual(t, text, got)
		stripped := strings.Map(func(r rune) rune {
			switch r {
			case '​', '‌', '‍', '⁠', ' ':
				return -1
			}
			return r
		}, got)
		stripped = strings.Join(strings.Fields(stripped), " ")
		assert.Equal(t, text, stripped, "visible content survives despacing")
	})
}

func TestSubstituteThenSpacing_ValidUTF8(t *testing.T) {
	// Substitute injects multi-byte homoglyphs; a following Spacing pass at
	// high level inserts zero-width spaces inside words and must never land
	// between the bytes of one rune.
	const text = "please analyze this chart"
	for seed := int64(0); seed < 50; seed++ {
		got := Spacing(Substitute(text, 0.5, seed), 0.9, seed)
		assert.True(t, utf8.ValidString(got), "seed %d produced invalid UTF-8: %q", seed, got)
	}
}

func TestFrame(t *testing.T) {
	const text = "describe the image"

	got := Frame(text, 3)
	assert.Contains(t, got, text)
	assert.Equal(t, got, Frame(text, 3), "same seed picks the same template")
}
