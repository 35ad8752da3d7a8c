package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/logger"
)

const (
	sectionSelector = "article#sorteosant"
	drawSelector    = "li.blq"
	headingSelector = "h4"
	numberSelector  = "li.numeros"
	starSelector    = "li.estrellas"
	millonSelector  = "li.millon"

	// specialDrawClass marks the extra weekly draw variant listed next to
	// the regular draw of the same date.
	specialDrawClass = "numestre"

	dateSeparator = "- "
	millonLabel   = "El Millón"
)

var (
	// ErrSectionNotFound is returned when the page has no previous draws section.
	ErrSectionNotFound = errors.New("previous draws section not found")

	// ErrMalformedDraw is returned for a draw block with neither numbers nor stars.
	ErrMalformedDraw = errors.New("malformed draw block")
)

// ExtractDraws walks the previous draws section under root and returns the
// regular draws in page order. Blocks that fail to extract are logged and
// skipped. If the section is missing, an empty slice and ErrSectionNotFound
// are returned.
func ExtractDraws(root Element) ([]*draw.Draw, error) {
	section, ok := root.FindOne(sectionSelector)
	if !ok {
		return []*draw.Draw{}, ErrSectionNotFound
	}

	items := section.FindAll(drawSelector)
	draws := make([]*draw.Draw, 0, len(items))

	for i, item := range items {
		if hasClass(item, specialDrawClass) {
			logger.IncrCounter("draws.skipped_special")
			continue
		}

		d, err := extractDraw(item)
		if err != nil {
			logger.Warn("skipping draw block", logger.Fields{"index": i}, err)
			logger.IncrCounter("draws.malformed")
			continue
		}

		draws = append(draws, d)
		logger.IncrCounter("draws.extracted")
	}

	return draws, nil
}

// extractDraw builds a Draw from a single draw block
func extractDraw(item Element) (*draw.Draw, error) {
	date := extractDate(item)
	numbers := texts(item.FindAll(numberSelector), draw.MaxNumbers)
	stars := texts(item.FindAll(starSelector), draw.MaxStars)

	// A block without any values is dropped rather than kept as an empty
	// record, so it never reaches the rankings or the report table.
	if len(numbers) == 0 && len(stars) == 0 {
		return nil, fmt.Errorf("%w: date %q has no numbers or stars", ErrMalformedDraw, date)
	}

	var code string
	if millon, ok := item.FindOne(millonSelector); ok {
		code = strings.TrimSpace(strings.ReplaceAll(millon.Text(), millonLabel, ""))
	}

	return draw.New(date, numbers, stars, code), nil
}

// extractDate returns the heading text after the "- " separator, the whole
// heading if there is no separator, or draw.UnknownDate without a heading.
func extractDate(item Element) string {
	heading, ok := item.FindOne(headingSelector)
	if !ok {
		return draw.UnknownDate
	}

	text := heading.Text()
	if _, after, found := strings.Cut(text, dateSeparator); found {
		return after
	}
	return text
}

// texts returns the text of the first limit elements
func texts(elements []Element, limit int) []string {
	if len(elements) > limit {
		elements = elements[:limit]
	}
	values := make([]string, 0, len(elements))
	for _, el := range elements {
		values = append(values, el.Text())
	}
	return values
}
