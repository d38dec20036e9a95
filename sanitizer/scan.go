package sanitizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is returned when a pattern fails to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Separator joins formatted characters.
const Separator = ", "

// Finding describes one distinct character that failed the pattern.
type Finding struct {
	Char   rune
	Offset int // byte offset of the first occurrence
	Count  int
}

// CompilePattern compiles a Go (RE2) regular expression.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// ScanNonMatching tests every character of input on its own against re and
// returns those that do not match, in first-seen order. The result is never nil.
func ScanNonMatching(input string, re *regexp.Regexp) []Finding {
	findings := []Finding{}
	if input == "" || re == nil {
		return findings
	}

	matched := make(map[rune]bool)
	index := make(map[rune]int)
	for offset, r := range input {
		ok, seen := matched[r]
		if !seen {
			ok = re.MatchString(string(r))
			matched[r] = ok
		}
		if ok {
			continue
		}
		if i, dup := index[r]; dup {
			findings[i].Count++
			continue
		}
		index[r] = len(findings)
		findings = append(findings, Finding{Char: r, Offset: offset, Count: 1})
	}
	return findings
}

// FindNonMatchingCharacters returns the distinct characters of input that do not
// match pattern, in first-seen order. Empty input or an empty pattern yields an
// empty slice without compiling anything. A malformed pattern yields ErrInvalidPattern.
func FindNonMatchingCharacters(input, pattern string) ([]rune, error) {
	if input == "" || pattern == "" {
		return []rune{}, nil
	}

	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	findings := ScanNonMatching(input, re)
	chars := make([]rune, 0, len(findings))
	for _, f := range findings {
		chars = append(chars, f.Char)
	}
	return chars, nil
}

// FindNonMatchingCharactersFormatted is FindNonMatchingCharacters rendered with FormatCharacters.
func FindNonMatchingCharactersFormatted(input, pattern string) (string, error) {
	chars, err := FindNonMatchingCharacters(input, pattern)
	if err != nil {
		return "", err
	}
	return FormatCharacters(chars), nil
}

// FormatSpecialCharacter labels space, newline and tab; any other character is returned as is.
func FormatSpecialCharacter(r rune) string {
	switch r {
	case ' ':
		return "[Space]"
	case '\n':
		return "[Newline]"
	case '\t':
		return "[Tab]"
	default:
		return string(r)
	}
}

func FormatCharacters(chars []rune) string {
	labels := make([]string, 0, len(chars))
	for _, r := range chars {
		labels = append(labels, FormatSpecialCharacter(r))
	}
	return strings.Join(labels, Separator)
}
