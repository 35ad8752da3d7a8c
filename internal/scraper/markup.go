package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Element is the markup capability the extractor relies on.
type Element interface {
	// FindOne returns the first descendant matching selector.
	FindOne(selector string) (Element, bool)
	// FindAll returns every descendant matching selector in document order.
	FindAll(selector string) []Element
	// Classes returns the element's own class list.
	Classes() []string
	// Text returns the element's text content with surrounding whitespace trimmed.
	Text() string
}

var matchers = map[string]cascadia.Selector{}

// matcher compiles selector once and caches it. An invalid selector panics,
// selectors are package constants.
func matcher(selector string) cascadia.Selector {
	if m, ok := matchers[selector]; ok {
		return m
	}
	m := cascadia.MustCompile(selector)
	matchers[selector] = m
	return m
}

// ParseDocument parses HTML from r and returns its root element.
func ParseDocument(r io.Reader) (Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return selection{doc.Selection}, nil
}

// selection adapts a single-node goquery selection to Element
type selection struct {
	sel *goquery.Selection
}

func (s selection) FindOne(selector string) (Element, bool) {
	found := s.sel.FindMatcher(matcher(selector)).First()
	if found.Length() == 0 {
		return nil, false
	}
	return selection{found}, true
}

func (s selection) FindAll(selector string) []Element {
	found := s.sel.FindMatcher(matcher(selector))
	elements := make([]Element, 0, found.Length())
	found.Each(func(_ int, item *goquery.Selection) {
		elements = append(elements, selection{item})
	})
	return elements
}

func (s selection) Classes() []string {
	class, ok := s.sel.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

func (s selection) Text() string {
	return strings.TrimSpace(s.sel.Text())
}

// hasClass reports whether el carries class in its own class list.
func hasClass(el Element, class string) bool {
	for _, c := range el.Classes() {
		if c == class {
			return true
		}
	}
	return false
}
