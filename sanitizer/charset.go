package sanitizer

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// ErrUnknownPlatform is returned when a platform name has no predefined character sets.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform names accepted by CharacterSetsFor.
const (
	PlatformHost    = "host"
	PlatformUnix    = "unix"
	PlatformWindows = "windows"
)

// CharSet is an immutable set of runes. The zero value is the empty set.
//
// CharSet satisfies golang.org/x/text/runes.Set.
type CharSet struct {
	members map[rune]struct{}
}

// NewCharSet builds a set from the given runes. Duplicates are ignored.
func NewCharSet(chars ...rune) CharSet {
	members := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		members[r] = struct{}{}
	}
	return CharSet{members: members}
}

// CharSetFromString builds a set from every rune of s.
func CharSetFromString(s string) CharSet {
	return NewCharSet([]rune(s)...)
}

func (c CharSet) Contains(r rune) bool {
	_, ok := c.members[r]
	return ok
}

func (c CharSet) Len() int {
	return len(c.members)
}

// Runes returns the members in ascending order. The slice is a copy.
func (c CharSet) Runes() []rune {
	out := make([]rune, 0, len(c.members))
	for r := range c.members {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (c CharSet) Union(other CharSet) CharSet {
	return NewCharSet(append(c.Runes(), other.Runes()...)...)
}

// String renders the set with Go escaping, e.g. "\x00/".
func (c CharSet) String() string {
	var b strings.Builder
	for _, r := range c.Runes() {
		b.WriteRune(r)
	}
	return fmt.Sprintf("%+q", b.String())
}

// CharacterSets holds the characters disallowed in path strings and in file names.
type CharacterSets struct {
	Path     CharSet
	FileName CharSet
}

// controlRunes returns U+0000 through U+001F.
func controlRunes() []rune {
	out := make([]rune, 0, 0x20)
	for r := rune(0); r < 0x20; r++ {
		out = append(out, r)
	}
	return out
}

// UnixCharacterSets mirrors what POSIX systems reject: NUL anywhere, and '/' inside a name.
func UnixCharacterSets() CharacterSets {
	return CharacterSets{
		Path:     NewCharSet(0),
		FileName: NewCharSet(0, '/'),
	}
}

// WindowsCharacterSets mirrors the Win32 rules, control characters included.
func WindowsCharacterSets() CharacterSets {
	controls := controlRunes()
	return CharacterSets{
		Path:     NewCharSet(append([]rune{'|'}, controls...)...),
		FileName: NewCharSet(append([]rune{'"', '<', '>', '|', ':', '*', '?', '\\', '/'}, controls...)...),
	}
}

// HostCharacterSets returns the sets for the operating system this binary was built for.
func HostCharacterSets() CharacterSets {
	if runtime.GOOS == "windows" {
		return WindowsCharacterSets()
	}
	return UnixCharacterSets()
}

// CharacterSetsFor resolves a platform name ("host", "unix" or "windows").
// Matching is case-insensitive.
func CharacterSetsFor(platform string) (CharacterSets, error) {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case PlatformHost:
		return HostCharacterSets(), nil
	case PlatformUnix:
		return UnixCharacterSets(), nil
	case PlatformWindows:
		return WindowsCharacterSets(), nil
	}
	return CharacterSets{}, fmt.Errorf("%w %q", ErrUnknownPlatform, platform)
}
