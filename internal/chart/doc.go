// Package chart renders cumulative frequency lines for the report.
//
// A Figure is rendered two ways: HTML returns an interactive Plotly snippet
// (loaded from the Plotly CDN) whose legend toggles each line, and SVG draws
// a static image with go-chart for readers without JavaScript.
package chart
