// ABOUTME: Collapsible block pair with a client-side read-more control
// ABOUTME: Builds the paired divs and the companion show/hide script element

package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/markup"
)

// toggleScript is the client-side half of the widget. Returning true lets
// the control's href fire, so the location fragment lands on the post
// anchor rather than on either transient block id.
const toggleScript = `function planetToggle(show, hide) {
  document.getElementById(show).style.display = "";
  document.getElementById(hide).style.display = "none";
  return true;
}`

// Toggle wraps expanded and full into a pair of sibling divs. The first div
// shows expanded with a "Read more" control; the second holds full, starts
// hidden, and carries the inverse "Hide" control. Both controls link to
// #anchor so the visible URL fragment stays stable while toggling.
//
// The caller is responsible for emitting ToggleScript once per output
// document; Toggle itself never deduplicates.
func Toggle(ids *IDAllocator, expanded, full []*html.Node, anchor string) []*html.Node {
	shortID := ids.Next()
	fullID := ids.Next()

	shortDiv := markup.Element("div", markup.Attr("id", shortID))
	markup.Append(shortDiv, expanded...)
	markup.Append(shortDiv, control("Read more…", anchor, fullID, shortID))

	fullDiv := markup.Element("div",
		markup.Attr("id", fullID),
		markup.Attr("style", "display: none"))
	markup.Append(fullDiv, full...)
	markup.Append(fullDiv, control("Hide", anchor, shortID, fullID))

	return []*html.Node{shortDiv, fullDiv}
}

// control builds the paragraph holding one toggle link.
func control(label, anchor, show, hide string) *html.Node {
	a := markup.Element("a",
		markup.Attr("href", "#"+anchor),
		markup.Attr("onclick", fmt.Sprintf("return planetToggle('%s', '%s')", show, hide)))
	markup.Append(a, markup.Text(label))

	p := markup.Element("p", markup.Attr("class", "toggle-control"))
	markup.Append(p, a)
	return p
}

// ToggleScript returns the script element every document containing at
// least one toggle must include exactly once.
func ToggleScript() *html.Node {
	s := markup.Element("script")
	markup.Append(s, markup.Text(toggleScript))
	return s
}
