// Package stats computes frequency statistics over EuroMillones draws.
//
// Rank counts values per position and keeps the most frequent ones. BuildSeries
// accumulates occurrences of every possible number and star over the draw
// dates, one running total per value, for charting.
package stats
