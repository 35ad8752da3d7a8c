package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/pfrederiksen/euromillones/internal/draw"
)

// Possible values of the game. Numbers and stars outside these ranges never
// get a series.
const (
	MinNumber = 1
	MaxNumber = 50
	MinStar   = 1
	MaxStar   = 12
)

// Series holds cumulative occurrence counts per possible value, one point per
// distinct draw date in ascending order.
type Series struct {
	Dates   []time.Time      `json:"dates"`
	Numbers map[string][]int `json:"numbers"`
	Stars   map[string][]int `json:"stars"`
}

// NumberValues returns the possible numbers "1".."50" in ascending order.
func NumberValues() []string {
	return valueRange(MinNumber, MaxNumber)
}

// StarValues returns the possible stars "1".."12" in ascending order.
func StarValues() []string {
	return valueRange(MinStar, MaxStar)
}

func valueRange(lo, hi int) []string {
	values := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, strconv.Itoa(v))
	}
	return values
}

// BuildSeries accumulates number and star occurrences over draw dates. Draws
// whose date cannot be parsed are left out; draws sharing a date are merged.
func BuildSeries(draws []*draw.Draw) *Series {
	numbersByDate := make(map[time.Time]map[string]int)
	starsByDate := make(map[time.Time]map[string]int)

	for _, d := range draws {
		date, ok := d.ParsedDate()
		if !ok {
			continue
		}
		if numbersByDate[date] == nil {
			numbersByDate[date] = make(map[string]int)
			starsByDate[date] = make(map[string]int)
		}
		for _, n := range d.Numbers {
			numbersByDate[date][n]++
		}
		for _, s := range d.Stars {
			starsByDate[date][s]++
		}
	}

	dates := make([]time.Time, 0, len(numbersByDate))
	for date := range numbersByDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	return &Series{
		Dates:   dates,
		Numbers: accumulate(dates, numbersByDate, NumberValues()),
		Stars:   accumulate(dates, starsByDate, StarValues()),
	}
}

// accumulate walks dates in order keeping a running total per value
func accumulate(dates []time.Time, byDate map[time.Time]map[string]int, values []string) map[string][]int {
	totals := make(map[string]int, len(values))
	out := make(map[string][]int, len(values))
	for _, v := range values {
		out[v] = make([]int, 0, len(dates))
	}

	for _, date := range dates {
		bucket := byDate[date]
		for _, v := range values {
			totals[v] += bucket[v]
			out[v] = append(out[v], totals[v])
		}
	}
	return out
}
