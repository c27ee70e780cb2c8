// Package message builds the WhatsApp reminder and greeting texts and the
// deep links that launch the messaging client.
package message

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Substitution downgrades an emoji known to render poorly on some devices
// to a widely supported equivalent.
type Substitution struct {
	From string
	To   string
}

// DefaultSubstitutions are the downgrades observed to be necessary in the
// field: the raising-hand greeting collapses to a plain wave and the
// legacy smiling face to the plain slightly-smiling face.
var DefaultSubstitutions = []Substitution{
	{From: "\U0001F64B", To: "\U0001F44B"}, // 🙋 -> 👋
	{From: "☺", To: "\U0001F642"},     // ☺ -> 🙂
}

// Sanitizer strips the Unicode sequences that some messaging clients fail
// to render (they show up as replacement glyphs on the recipient's side).
type Sanitizer struct {
	subs []Substitution
}

// NewSanitizer builds a sanitizer with the default substitution table plus
// any extra downgrades.
func NewSanitizer(extra ...Substitution) *Sanitizer {
	subs := make([]Substitution, 0, len(DefaultSubstitutions)+len(extra))
	subs = append(subs, DefaultSubstitutions...)
	subs = append(subs, extra...)
	return &Sanitizer{subs: subs}
}

// Clean normalizes to NFKC, drops the zero-width joiner and the emoji
// variation selector, drops skin-tone modifiers and standalone gender
// signs, then applies the substitution table. Clean is idempotent, so
// text may safely pass through it more than once.
func (s *Sanitizer) Clean(text string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == 0x200D || r == 0xFE0F: // zero-width joiner, variation selector-16
			return -1
		case r >= 0x1F3FB && r <= 0x1F3FF: // skin-tone modifiers
			return -1
		case r == 0x2640 || r == 0x2642: // ♀ ♂, left standalone once the ZWJ is gone
			return -1
		}
		return r
	}, norm.NFKC.String(text))

	for _, sub := range s.subs {
		cleaned = strings.ReplaceAll(cleaned, sub.From, sub.To)
	}
	return cleaned
}
