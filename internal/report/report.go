package report

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/stats"
)

// DefaultFilename is where the report is written unless told otherwise.
const DefaultFilename = "euromillones_completo.html"

// ErrNoDraws is returned when asked to render a report without draws.
var ErrNoDraws = errors.New("no draws to report")

//go:embed report.html.tmpl
var reportHTML string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"ordinal": ordinal,
}).Parse(reportHTML))

// Data is everything the report shows.
type Data struct {
	Draws       []*draw.Draw // newest first
	Rankings    stats.Rankings
	Chart       template.HTML // interactive chart snippet
	StaticChart template.HTML // optional inline SVG
	SourceURL   string
}

// Latest returns the most recent draw.
func (d *Data) Latest() *draw.Draw {
	return d.Draws[0]
}

// Previous returns every draw but the latest.
func (d *Data) Previous() []*draw.Draw {
	return d.Draws[1:]
}

// Render writes the HTML report to w.
func Render(w io.Writer, data *Data) error {
	if data == nil || len(data.Draws) == 0 {
		return ErrNoDraws
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// WriteFile renders the report into path. The file is written to a temporary
// name in the same directory and renamed, so a failed render leaves no file.
func WriteFile(path string, data *Data) error {
	if data == nil || len(data.Draws) == 0 {
		return ErrNoDraws
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.html")
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer os.Remove(tmp.Name()) // nolint:errcheck

	if err := Render(tmp, data); err != nil {
		tmp.Close() // nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("setting report permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// ordinal formats a 0-based position as a Spanish feminine ordinal ("1ª")
func ordinal(i int) string {
	return fmt.Sprintf("%dª", i+1)
}
