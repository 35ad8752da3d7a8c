// Package report renders the EuroMillones HTML report.
//
// The report is a single self-contained document: the latest draw, a table of
// earlier draws, per-position rankings for numbers and stars, and the
// cumulative frequency charts produced by the chart package.
package report
