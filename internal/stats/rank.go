package stats

import (
	"sort"

	"github.com/pfrederiksen/euromillones/internal/draw"
)

// TopN is the number of entries kept per position.
const TopN = 3

// Entry is a value and the number of times it occurred.
type Entry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Rankings holds the most frequent values per position.
type Rankings struct {
	Numbers [draw.MaxNumbers][]Entry `json:"numbers"`
	Stars   [draw.MaxStars][]Entry   `json:"stars"`
}

// frequencyTable counts values and remembers the order they were first seen.
type frequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{counts: make(map[string]int)}
}

func (f *frequencyTable) add(value string) {
	if _, seen := f.counts[value]; !seen {
		f.order = append(f.order, value)
	}
	f.counts[value]++
}

// top returns the n most frequent values. Equal counts keep first-seen order.
func (f *frequencyTable) top(n int) []Entry {
	entries := make([]Entry, 0, len(f.order))
	for _, v := range f.order {
		entries = append(entries, Entry{Value: v, Count: f.counts[v]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Rank returns the TopN values for each number and star position. A draw
// missing a slot does not contribute to that position.
func Rank(draws []*draw.Draw) Rankings {
	var numbers [draw.MaxNumbers]*frequencyTable
	for i := range numbers {
		numbers[i] = newFrequencyTable()
	}
	var stars [draw.MaxStars]*frequencyTable
	for i := range stars {
		stars[i] = newFrequencyTable()
	}

	for _, d := range draws {
		for i, table := range numbers {
			if v, ok := d.Number(i); ok {
				table.add(v)
			}
		}
		for i, table := range stars {
			if v, ok := d.Star(i); ok {
				table.add(v)
			}
		}
	}

	var r Rankings
	for i, table := range numbers {
		r.Numbers[i] = table.top(TopN)
	}
	for i, table := range stars {
		r.Stars[i] = table.top(TopN)
	}
	return r
}
