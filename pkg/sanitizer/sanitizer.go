package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// TrimAndNormalize trims the string and collapses internal whitespace runs
// to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func SanitizeGuestName(name string) string {
	p := Pipeline{TrimAndNormalize}
	return p.Apply(name)
}

func SanitizeNotes(notes string) string {
	p := Pipeline{TrimAndNormalize}
	return p.Apply(notes)
}

func SanitizeEmail(email string) string {
	p := Pipeline{strings.TrimSpace, strings.ToLower}
	return p.Apply(email)
}
