package chart

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"html/template"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
)

// PlotlyCDN is the script the interactive chart loads.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Dash styles understood by both renderers.
const (
	DashSolid = "solid"
	DashDot   = "dot"
)

// Line is one named series of (date, value) points.
type Line struct {
	Name   string
	X      []time.Time
	Y      []int
	Color  string
	Dash   string
	Hidden bool // listed in the legend but not drawn until clicked
}

// Figure is a set of lines sharing a date axis.
type Figure struct {
	Title       string
	XTitle      string
	YTitle      string
	LegendTitle string
	Lines       []Line
}

var plotlyTemplate = template.Must(template.New("plotly").Parse(
	`<div id="{{.ID}}" class="plotly-graph-div" style="height:600px; width:100%;"></div>
<script src="{{.Script}}" charset="utf-8"></script>
<script>(function() { var fig = {{.Fig}}; Plotly.newPlot({{.ID}}, fig.data, fig.layout, {"responsive": true}); })();</script>
`))

// Plotly converts the figure into a plotly figure object.
func (f *Figure) Plotly() (*grob.Fig, error) {
	traces := make(grob.Traces, 0, len(f.Lines))
	for _, l := range f.Lines {
		if len(l.X) != len(l.Y) {
			return nil, fmt.Errorf("line %q: %d dates for %d values", l.Name, len(l.X), len(l.Y))
		}

		x := make([]string, len(l.X))
		for i, t := range l.X {
			x[i] = t.Format("2006-01-02")
		}
		y := make([]int, len(l.Y))
		copy(y, l.Y)

		visible := grob.ScatterVisibleTrue
		if l.Hidden {
			visible = grob.ScatterVisibleLegendonly
		}

		traces = append(traces, &grob.Scatter{
			Type:    grob.TraceTypeScatter,
			Mode:    grob.ScatterModeLines,
			Name:    grob.String(l.Name),
			X:       x,
			Y:       y,
			Visible: visible,
			Line: &grob.ScatterLine{
				Color: grob.Color(l.Color),
				Dash:  grob.String(l.Dash),
			},
		})
	}

	return &grob.Fig{
		Data: traces,
		Layout: &grob.Layout{
			Title:     &grob.LayoutTitle{Text: grob.String(f.Title)},
			Xaxis:     &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: grob.String(f.XTitle)}},
			Yaxis:     &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: grob.String(f.YTitle)}},
			Hovermode: grob.LayoutHovermodeXUnified,
			Legend:    &grob.LayoutLegend{Title: &grob.LayoutLegendTitle{Text: grob.String(f.LegendTitle)}},
		},
	}, nil
}

// HTML renders the figure as an embeddable Plotly snippet.
func (f *Figure) HTML() (template.HTML, error) {
	fig, err := f.Plotly()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = plotlyTemplate.Execute(&buf, struct {
		ID     string
		Script string
		Fig    *grob.Fig
	}{
		ID:     f.elementID(),
		Script: PlotlyCDN,
		Fig:    fig,
	})
	if err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	return template.HTML(buf.String()), nil
}

// elementID derives a stable DOM id from the title
func (f *Figure) elementID() string {
	h := sha1.Sum([]byte(f.Title))
	return fmt.Sprintf("chart-%x", h[:4])
}
