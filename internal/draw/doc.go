// Package draw provides the EuroMillones draw record and its date handling.
//
// A Draw keeps every value as the display string found on the results page.
// Positions inside Numbers and Stars are meaningful: ranking is computed per
// slot, so the slices preserve document order and are never sorted.
package draw
