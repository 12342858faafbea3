// ABOUTME: Subscriber list rendering from outline contributor records
// ABOUTME: Sorts contributors by name and emits a linked list

package render

import (
	"sort"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/markup"
	"github.com/harper/planet/internal/opml"
)

// Subscribers renders contributor records as a linked list, sorted by name
// with plain string comparison. Records are not de-duplicated; a
// contributor listed in two documents appears twice.
func Subscribers(contributors []opml.Contributor) *html.Node {
	sorted := make([]opml.Contributor, len(contributors))
	copy(sorted, contributors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	ul := markup.Element("ul", markup.Attr("class", "subscribers"))
	for _, c := range sorted {
		a := markup.Element("a", markup.Attr("href", c.URL))
		markup.Append(a, markup.Text(c.Name))

		li := markup.Element("li")
		markup.Append(li, a)
		markup.Append(ul, li)
	}
	return ul
}
