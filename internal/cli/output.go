package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/report"
	"github.com/pfrederiksen/euromillones/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatHTML OutputFormat = "html"
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func (f OutputFormat) valid() bool {
	switch f {
	case FormatHTML, FormatText, FormatJSON:
		return true
	}
	return false
}

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time      `json:"generated_at"`
	SourceURL   string         `json:"source_url"`
	DrawCount   int            `json:"draw_count"`
	Latest      *draw.Draw     `json:"latest"`
	Draws       []*draw.Draw   `json:"draws"`
	Rankings    stats.Rankings `json:"rankings"`
}

func newOutputResult(data *report.Data) *OutputResult {
	return &OutputResult{
		GeneratedAt: time.Now().UTC(),
		SourceURL:   data.SourceURL,
		DrawCount:   len(data.Draws),
		Latest:      data.Latest(),
		Draws:       data.Draws,
		Rankings:    data.Rankings,
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the latest draw and the rankings as tables
func writeText(w io.Writer, result *OutputResult) error {
	latest := result.Latest
	fmt.Fprintf(w, "Último sorteo: %s\n", latest.Date)
	fmt.Fprintf(w, "  Números:   %s\n", strings.Join(latest.Numbers, " "))
	fmt.Fprintf(w, "  Estrellas: %s\n", strings.Join(latest.Stars, " "))
	if latest.MillionCode != "" {
		fmt.Fprintf(w, "  El Millón: %s\n", latest.MillionCode)
	}
	fmt.Fprintf(w, "\n%d sorteos analizados\n\n", result.DrawCount)

	newRankingTable(w, "Top 3 números por posición", result.Rankings.Numbers[:]).Render()
	fmt.Fprintln(w)
	newRankingTable(w, "Top 3 estrellas por posición", result.Rankings.Stars[:]).Render()
	return nil
}

func newRankingTable(w io.Writer, title string, positions [][]stats.Entry) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Posición", "1º", "2º", "3º"})

	for i, entries := range positions {
		row := table.Row{fmt.Sprintf("%dª", i+1)}
		for _, e := range entries {
			row = append(row, fmt.Sprintf("%s (%d veces)", e.Value, e.Count))
		}
		for len(row) < stats.TopN+1 {
			row = append(row, "")
		}
		t.AppendRow(row)
	}
	return t
}
