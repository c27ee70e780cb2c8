package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStripsJoinerSequences(t *testing.T) {
	s := NewSanitizer()

	// Woman raising hand, medium skin tone: base + modifier + ZWJ + ♀ + VS16.
	got := s.Clean("\U0001F64B\U0001F3FD\u200D\u2640\uFE0F")
	assert.Equal(t, "\U0001F44B", got, "sequence must collapse to the plain wave")
}

func TestCleanStripsSkinToneModifiers(t *testing.T) {
	s := NewSanitizer()
	got := s.Clean("\U0001F44B\U0001F3FF hola")
	assert.Equal(t, "\U0001F44B hola", got)
}

func TestCleanDowngradesLegacySmiley(t *testing.T) {
	s := NewSanitizer()
	assert.Equal(t, "\U0001F642", s.Clean("☺️"))
	assert.Equal(t, "\U0001F642", s.Clean("☺"))
}

func TestCleanLeavesPlainTextAlone(t *testing.T) {
	s := NewSanitizer()
	text := "Recordatorio de su cita para el 2025-03-10 a las 09:00."
	assert.Equal(t, text, s.Clean(text))
}

func TestCleanAppliesExtraSubstitutions(t *testing.T) {
	s := NewSanitizer(Substitution{From: "\U0001F9B7", To: "\U0001F642"})
	assert.Equal(t, "\U0001F642", s.Clean("\U0001F9B7"))
}

func TestCleanIsIdempotent(t *testing.T) {
	s := NewSanitizer()
	inputs := []string{
		"",
		"hola",
		"\U0001F64B\U0001F3FD\u200D\u2640\uFE0F",
		"☺️ texto \U0001F389\U0001F382",
		"¡Feliz cumpleaños! \U0001F642",
		"\uFE0F\u200D\u2642",
	}
	for _, in := range inputs {
		once := s.Clean(in)
		assert.Equal(t, once, s.Clean(once), "Clean must be idempotent for %q", in)
	}
}
