package report

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/pfrederiksen/euromillones/internal/chart"
	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/logger"
	"github.com/pfrederiksen/euromillones/internal/stats"
)

const (
	staticChartWidth  = 1000
	staticChartHeight = 420
)

// Build computes rankings and charts for draws and returns the report data.
func Build(draws []*draw.Draw, sourceURL string) (*Data, error) {
	if len(draws) == 0 {
		return nil, ErrNoDraws
	}

	series := stats.BuildSeries(draws)

	data := &Data{
		Draws:     draws,
		Rankings:  stats.Rank(draws),
		SourceURL: sourceURL,
	}

	if len(series.Dates) == 0 {
		logger.Warn("no parseable draw dates, charts omitted", logger.Fields{"draws": len(draws)}, nil)
		return data, nil
	}

	interactive, err := CumulativeFigure(series).HTML()
	if err != nil {
		return nil, err
	}
	data.Chart = interactive

	var svg bytes.Buffer
	switch err := LatestFigure(series, draws[0]).SVG(&svg, staticChartWidth, staticChartHeight); {
	case err == nil:
		data.StaticChart = template.HTML(svg.String())
	case errors.Is(err, chart.ErrTooFewPoints):
		logger.Debug("not enough dates for static chart", logger.Fields{"dates": len(series.Dates)})
	default:
		logger.Warn("static chart omitted", nil, err)
	}

	return data, nil
}

// CumulativeFigure has one hidden line per possible number and star.
func CumulativeFigure(series *stats.Series) *chart.Figure {
	f := &chart.Figure{
		Title:       "Frecuencia acumulada de números y estrellas por fecha (Euromillones)",
		XTitle:      "Fecha",
		YTitle:      "Frecuencia acumulada",
		LegendTitle: "Haz clic para mostrar/ocultar líneas",
	}

	for _, v := range stats.NumberValues() {
		f.Lines = append(f.Lines, numberLine(series, v, true))
	}
	for _, v := range stats.StarValues() {
		f.Lines = append(f.Lines, starLine(series, v, true))
	}
	return f
}

// LatestFigure follows the numbers and stars of the latest draw.
// Values outside the game's range have no series and are skipped.
func LatestFigure(series *stats.Series, latest *draw.Draw) *chart.Figure {
	f := &chart.Figure{
		Title:  fmt.Sprintf("Última combinación (%s)", latest.Date),
		XTitle: "Fecha",
		YTitle: "Frecuencia acumulada",
	}

	for _, v := range latest.Numbers {
		if _, ok := series.Numbers[v]; ok {
			f.Lines = append(f.Lines, numberLine(series, v, false))
		}
	}
	for _, v := range latest.Stars {
		if _, ok := series.Stars[v]; ok {
			f.Lines = append(f.Lines, starLine(series, v, false))
		}
	}
	return f
}

func numberLine(series *stats.Series, value string, hidden bool) chart.Line {
	return chart.Line{
		Name:   "Número " + value,
		X:      series.Dates,
		Y:      series.Numbers[value],
		Color:  "blue",
		Dash:   chart.DashSolid,
		Hidden: hidden,
	}
}

func starLine(series *stats.Series, value string, hidden bool) chart.Line {
	return chart.Line{
		Name:   "Estrella " + value,
		X:      series.Dates,
		Y:      series.Stars[value],
		Color:  "red",
		Dash:   chart.DashDot,
		Hidden: hidden,
	}
}
