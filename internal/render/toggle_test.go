// ABOUTME: Tests for the collapsible block pair and its script element
// ABOUTME: Checks hidden state, anchor links, and control wiring

package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/markup"
)

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findAll returns every element with the given tag under roots, in
// document order.
func findAll(roots []*html.Node, tag string) []*html.Node {
	var found []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, root := range roots {
		visit(root)
	}
	return found
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

func TestToggle(t *testing.T) {
	ids := NewIDAllocator("toggle")
	expanded := []*html.Node{markup.Text("short")}
	full := []*html.Node{markup.Text("the full story")}

	nodes := Toggle(ids, expanded, full, "anchor123")
	if len(nodes) != 2 {
		t.Fatalf("Toggle returned %d nodes, want 2", len(nodes))
	}

	shortDiv, fullDiv := nodes[0], nodes[1]
	shortID := attrVal(shortDiv, "id")
	fullID := attrVal(fullDiv, "id")
	if shortID == "" || fullID == "" || shortID == fullID {
		t.Fatalf("block ids = %q, %q, want two distinct ids", shortID, fullID)
	}

	if got := attrVal(shortDiv, "style"); got != "" {
		t.Errorf("visible block style = %q, want none", got)
	}
	if got := attrVal(fullDiv, "style"); got != "display: none" {
		t.Errorf("hidden block style = %q, want %q", got, "display: none")
	}

	links := findAll(nodes, "a")
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	for i, a := range links {
		if got := attrVal(a, "href"); got != "#anchor123" {
			t.Errorf("link %d href = %q, want %q", i, got, "#anchor123")
		}
	}

	// Read more shows the full block and hides the short one; Hide inverts.
	more, hide := links[0], links[1]
	if got := textContent(more); got != "Read more…" {
		t.Errorf("control label = %q, want %q", got, "Read more…")
	}
	wantMore := "return planetToggle('" + fullID + "', '" + shortID + "')"
	if got := attrVal(more, "onclick"); got != wantMore {
		t.Errorf("read-more onclick = %q, want %q", got, wantMore)
	}

	if got := textContent(hide); got != "Hide" {
		t.Errorf("control label = %q, want %q", got, "Hide")
	}
	wantHide := "return planetToggle('" + shortID + "', '" + fullID + "')"
	if got := attrVal(hide, "onclick"); got != wantHide {
		t.Errorf("hide onclick = %q, want %q", got, wantHide)
	}

	if !strings.Contains(textContent(shortDiv), "short") {
		t.Error("visible block lost its content")
	}
	if !strings.Contains(textContent(fullDiv), "the full story") {
		t.Error("hidden block lost its content")
	}
}

func TestToggleScript(t *testing.T) {
	s := ToggleScript()
	if s.Type != html.ElementNode || s.Data != "script" {
		t.Fatalf("got %v %q, want a script element", s.Type, s.Data)
	}
	if !strings.Contains(textContent(s), "function planetToggle(show, hide)") {
		t.Error("script body missing the toggle function")
	}
}
