package main

import (
	"fmt"

	"github.com/fingon/go-textsanitize/sanitizer"
)

const (
	cleanModeAll      = "all"
	cleanModePath     = "path"
	cleanModeFileName = "filename"
)

type CleanCmd struct {
	Mode string   `kong:"name='mode',enum='all,path,filename',default='all',help='Which characters to remove: all, path or filename.'"`
	Text []string `kong:"arg,optional,help='Text to clean. Reads stdin when omitted.'"`
}

func (c *CleanCmd) Run(app *App) error {
	texts, err := readTexts(c.Text, app.In)
	if err != nil {
		return err
	}

	var clean func(string) string
	switch c.Mode {
	case cleanModePath:
		clean = app.Sanitizer.RemoveInvalidPathCharacters
	case cleanModeFileName:
		clean = app.Sanitizer.RemoveInvalidFileNameCharacters
	case cleanModeAll, "":
		clean = app.Sanitizer.RemoveInvalidCharacters
	default:
		return fmt.Errorf("unknown clean mode %q", c.Mode)
	}

	results := make([]string, 0, len(texts))
	for _, text := range texts {
		results = append(results, clean(text))
	}
	return writeLines(app.Out, results)
}

type ReplaceCmd struct {
	Last        bool     `kong:"name='last',help='Replace the last occurrence instead of the first.'"`
	Search      string   `kong:"arg,help='Exact, case-sensitive text to look for.'"`
	Replacement string   `kong:"arg,help='Text to put in its place.'"`
	Text        []string `kong:"arg,optional,help='Text to edit. Reads stdin when omitted.'"`
}

func (c *ReplaceCmd) Run(app *App) error {
	texts, err := readTexts(c.Text, app.In)
	if err != nil {
		return err
	}

	replace := sanitizer.ReplaceFirstOccurrenceOfStringInText
	if c.Last {
		replace = sanitizer.ReplaceLastOccurrenceOfStringInText
	}

	results := make([]string, 0, len(texts))
	for _, text := range texts {
		result := replace(text, c.Search, c.Replacement)
		if result == text {
			app.Logger.Debug().Str("search", c.Search).Msg("No occurrence found, text unchanged")
		}
		results = append(results, result)
	}
	return writeLines(app.Out, results)
}

type ScanCmd struct {
	Table   bool     `kong:"name='table',help='Print a table with code points, offsets and counts.'"`
	Pattern string   `kong:"arg,help='Regular expression each character is tested against.'"`
	Text    []string `kong:"arg,optional,help='Text to scan. Reads stdin when omitted.'"`
}

func (c *ScanCmd) Run(app *App) error {
	texts, err := readTexts(c.Text, app.In)
	if err != nil {
		return err
	}

	if !c.Table {
		results := make([]string, 0, len(texts))
		for _, text := range texts {
			formatted, err := sanitizer.FindNonMatchingCharactersFormatted(text, c.Pattern)
			if err != nil {
				return err
			}
			results = append(results, formatted)
		}
		return writeLines(app.Out, results)
	}

	re, err := sanitizer.CompilePattern(c.Pattern)
	if err != nil {
		return err
	}
	for _, text := range texts {
		findings := sanitizer.ScanNonMatching(text, re)
		app.Logger.Debug().Int("distinct", len(findings)).Msg("Scanned text")
		if _, err := fmt.Fprintln(app.Out, renderFindings(findings)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
