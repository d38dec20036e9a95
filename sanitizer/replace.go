package sanitizer

import "strings"

// ReplaceFirstOccurrenceOfStringInText replaces the leftmost occurrence of search.
// The comparison is exact and case-sensitive. original is returned unchanged when
// it or search is empty, or when search does not occur.
func ReplaceFirstOccurrenceOfStringInText(original, search, replacement string) string {
	return replaceOccurrence(original, search, replacement, strings.Index)
}

// ReplaceLastOccurrenceOfStringInText replaces the rightmost occurrence of search.
// It follows the same rules as ReplaceFirstOccurrenceOfStringInText.
func ReplaceLastOccurrenceOfStringInText(original, search, replacement string) string {
	return replaceOccurrence(original, search, replacement, strings.LastIndex)
}

func replaceOccurrence(original, search, replacement string, index func(s, substr string) int) string {
	if original == "" || search == "" {
		return original
	}

	pos := index(original, search)
	if pos < 0 {
		return original
	}
	return original[:pos] + replacement + original[pos+len(search):]
}
