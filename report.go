package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/fingon/go-textsanitize/sanitizer"
)

// renderFindings renders scan findings as a table, one row per distinct character.
func renderFindings(findings []sanitizer.Finding) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Character", "Code point", "First offset", "Count"})
	for _, f := range findings {
		tw.AppendRow(table.Row{
			sanitizer.FormatSpecialCharacter(f.Char),
			fmt.Sprintf("U+%04X", f.Char),
			f.Offset,
			f.Count,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
