package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewPoints is returned by SVG when no line has two or more points.
var ErrTooFewPoints = errors.New("chart needs at least two points")

// colors maps the color names used by Line to go-chart colors
var colors = map[string]drawing.Color{
	"blue":  drawing.ColorBlue,
	"red":   drawing.ColorRed,
	"green": drawing.ColorGreen,
	"black": drawing.ColorBlack,
}

// SVG renders every line, hidden or not, as a static SVG image.
func (f *Figure) SVG(w io.Writer, width, height int) error {
	series := make([]gochart.Series, 0, len(f.Lines))
	maxY := 1.0

	for _, l := range f.Lines {
		if len(l.X) != len(l.Y) {
			return fmt.Errorf("line %q: %d dates for %d values", l.Name, len(l.X), len(l.Y))
		}
		if len(l.X) < 2 {
			continue
		}

		y := make([]float64, len(l.Y))
		for i, v := range l.Y {
			y[i] = float64(v)
			if y[i] > maxY {
				maxY = y[i]
			}
		}

		series = append(series, gochart.TimeSeries{
			Name:    l.Name,
			XValues: append([]time.Time(nil), l.X...),
			YValues: y,
			Style:   lineStyle(l),
		})
	}

	if len(series) == 0 {
		return ErrTooFewPoints
	}

	graph := gochart.Chart{
		Title:  f.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           f.XTitle,
			ValueFormatter: gochart.TimeDateValueFormatter,
		},
		YAxis: gochart.YAxis{
			Name:  f.YTitle,
			Range: &gochart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.LegendLeft(&graph)}

	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}
	return nil
}

func lineStyle(l Line) gochart.Style {
	color, ok := colors[l.Color]
	if !ok {
		color = drawing.ColorBlack
	}

	style := gochart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
	}
	if l.Dash == DashDot {
		style.StrokeDashArray = []float64{2, 4}
	}
	return style
}
