// Package scraper provides HTTP fetching and HTML extraction for EuroMillones
// results.
//
// The scraper fetches the public "resultados anteriores" page and walks the
// previous draws section, producing one draw.Draw per regular draw block in
// the order the page lists them (newest first). Extraction only depends on
// the small Element interface, implemented here over goquery selections with
// cascadia-compiled selectors.
package scraper
