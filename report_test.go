package main

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/fingon/go-textsanitize/sanitizer"
)

func TestRenderFindings(t *testing.T) {
	rendered := renderFindings([]sanitizer.Finding{
		{Char: '\t', Offset: 3, Count: 2},
		{Char: '€', Offset: 7, Count: 1},
	})

	lines := strings.Split(rendered, "\n")
	// top border, header, separator, two rows, bottom border
	assert.Equal(t, len(lines), 6, rendered)
	assert.Assert(t, strings.Contains(lines[3], "[Tab]"), rendered)
	assert.Assert(t, strings.Contains(lines[3], "U+0009"), rendered)
	assert.Assert(t, strings.Contains(lines[4], "€"), rendered)
	assert.Assert(t, strings.Contains(lines[4], "U+20AC"), rendered)
}
