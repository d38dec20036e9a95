// Package sanitizer strips characters that are invalid in paths and file names,
// replaces single substring occurrences, and reports characters that fail a pattern.
package sanitizer

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Sanitizer removes invalid characters according to an explicit pair of character sets.
// It holds no mutable state and is safe for concurrent use.
type Sanitizer struct {
	sets   CharacterSets
	logger zerolog.Logger
}

type Option func(*Sanitizer)

// WithLogger makes the sanitizer emit debug events whenever characters are removed.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sanitizer) {
		s.logger = logger
	}
}

func New(sets CharacterSets, opts ...Option) *Sanitizer {
	s := &Sanitizer{
		sets:   sets,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sanitizer) CharacterSets() CharacterSets {
	return s.sets
}

// RemoveInvalidPathCharacters drops every character of the path set, keeping order.
func (s *Sanitizer) RemoveInvalidPathCharacters(text string) string {
	return s.remove(text, s.sets.Path, "path")
}

// RemoveInvalidFileNameCharacters drops every character of the file name set, keeping order.
func (s *Sanitizer) RemoveInvalidFileNameCharacters(text string) string {
	return s.remove(text, s.sets.FileName, "file_name")
}

// RemoveInvalidCharacters applies the path filter and then the file name filter.
func (s *Sanitizer) RemoveInvalidCharacters(text string) string {
	if text == "" {
		return text
	}
	return s.RemoveInvalidFileNameCharacters(s.RemoveInvalidPathCharacters(text))
}

func (s *Sanitizer) remove(text string, set CharSet, setName string) string {
	if text == "" || set.Len() == 0 {
		return text
	}

	out, _, err := transform.String(runes.Remove(set), text)
	if err != nil {
		// Not expected from runes.Remove.
		s.logger.Warn().Err(err).Str("set", setName).Msg("Transformer failed, filtering rune by rune")
		out = strings.Map(func(r rune) rune {
			if set.Contains(r) {
				return -1
			}
			return r
		}, text)
	}

	if removed := utf8.RuneCountInString(text) - utf8.RuneCountInString(out); removed > 0 {
		s.logger.Debug().Str("set", setName).Int("removed", removed).Msg("Removed invalid characters")
	}
	return out
}
