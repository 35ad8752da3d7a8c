// Package cli implements the command-line interface for euromillones.
//
// The cli package provides the Cobra root command that fetches the results
// page, extracts draws, computes rankings and cumulative series, and writes
// the HTML report (or a text/JSON summary to stdout). A run that finds no
// draws prints a message and exits cleanly without writing anything.
package cli
