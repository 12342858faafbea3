// ABOUTME: End-to-end pipeline test from raw feed XML to rendered fragment
// ABOUTME: Covers parse, aggregate, normalize, render, and toggle truncation

package test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/feed"
	"github.com/harper/planet/internal/markup"
	"github.com/harper/planet/internal/post"
	"github.com/harper/planet/internal/render"
)

// TestFeedToFragment walks one item through the whole pipeline: a 2000
// character description against a 1200 threshold must render a visible
// block measuring under the threshold, a hidden block holding everything,
// and a section anchored by the digest of the normalized post.
func TestFeedToFragment(t *testing.T) {
	description := strings.Repeat("x", 2000)
	feedXML := fmt.Sprintf(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>One Channel</title>
    <item>
      <title>Alice: Big News</title>
      <guid isPermaLink="true">http://x/1</guid>
      <description>%s</description>
    </item>
  </channel>
</rss>`, description)

	ch, err := feed.NewParser().Parse([]byte(feedXML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	merged, err := feed.Aggregate([]feed.Channel{ch}, 0)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(merged.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(merged.Items))
	}

	p := post.Normalize(merged.Items[0])
	if p.Author != "Alice" || p.Title != "Big News" {
		t.Fatalf("normalized to author=%q title=%q, want Alice / Big News", p.Author, p.Title)
	}

	renderer := &render.PostRenderer{
		IDs:       render.NewIDAllocator("toggle"),
		Threshold: 1200,
	}
	section, err := renderer.Render(p)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// The anchor must equal the digest of the canonical post, computed
	// independently of the pipeline.
	link, _ := url.Parse("http://x/1")
	want := post.Digest(post.Post{Title: "Big News", Link: link})
	if got := attr(section, "id"); got != want {
		t.Errorf("section id = %q, want %q", got, want)
	}

	divs := elements(section, "div")
	if len(divs) != 2 {
		t.Fatalf("got %d toggle blocks, want 2", len(divs))
	}
	visible, hidden := divs[0], divs[1]

	if got := attr(hidden, "style"); got != "display: none" {
		t.Errorf("hidden block style = %q, want %q", got, "display: none")
	}

	// Visible description content stays strictly under the threshold.
	// (The only non-description text in the block is the control label.)
	visibleText := text(visible)
	visibleText = strings.TrimSuffix(visibleText, "Read more…")
	if len(visibleText) >= 1200 {
		t.Errorf("visible description length = %d, want < 1200", len(visibleText))
	}

	// Once shown, the hidden block carries the full 2000-length description.
	if !strings.Contains(text(hidden), description) {
		t.Error("hidden block does not hold the full description")
	}

	// The fragment serializes cleanly.
	out, err := markup.String([]*html.Node{section})
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if !strings.Contains(out, `id="`+want+`"`) {
		t.Error("serialized fragment lost the anchor")
	}
}

// TestAnchorStableAcrossOrder re-renders posts in a different order and
// checks that anchors stay put even though toggle ids move.
func TestAnchorStableAcrossOrder(t *testing.T) {
	long := strings.Repeat("y", 1500)
	a := post.Post{Title: "First", Description: long}
	b := post.Post{Title: "Second", Description: long}

	forward := &render.PostRenderer{IDs: render.NewIDAllocator("t"), Threshold: 1200}
	nodesAB, err := forward.RenderAll([]post.Post{a, b})
	if err != nil {
		t.Fatal(err)
	}

	backward := &render.PostRenderer{IDs: render.NewIDAllocator("t"), Threshold: 1200}
	nodesBA, err := backward.RenderAll([]post.Post{b, a})
	if err != nil {
		t.Fatal(err)
	}

	if attr(nodesAB[0], "id") != attr(nodesBA[1], "id") {
		t.Error("anchor for post A changed with render order")
	}
	if attr(nodesAB[1], "id") != attr(nodesBA[0], "id") {
		t.Error("anchor for post B changed with render order")
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func elements(root *html.Node, tag string) []*html.Node {
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
	visit(root)
	return found
}

func text(n *html.Node) string {
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
