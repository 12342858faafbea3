// ABOUTME: Helpers for building, measuring, and serializing HTML node trees
// ABOUTME: Wraps golang.org/x/net/html with fragment parsing and budgeted clipping

package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element creates an element node for the given tag with optional attributes.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Attr builds a single HTML attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append attaches children to parent in order.
// Children must be detached (freshly built, parsed, or cloned).
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		parent.AppendChild(c)
	}
}

// Fragment parses an HTML fragment string into a list of detached nodes.
// The fragment is parsed as body content, so bare text and inline markup
// survive without being wrapped in extra elements.
func Fragment(s string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}

	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment: %w", err)
	}
	return nodes, nil
}

// Render serializes nodes to w in document order.
func Render(w io.Writer, nodes []*html.Node) error {
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render node: %w", err)
		}
	}
	return nil
}

// String serializes nodes and returns the result as a string.
func String(nodes []*html.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, nodes); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Clone returns a deep copy of n. The copy is detached and safe to
// re-parent into another tree.
func Clone(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}

	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(Clone(c))
	}
	return clone
}

// CloneAll deep-copies a list of sibling nodes.
func CloneAll(nodes []*html.Node) []*html.Node {
	clones := make([]*html.Node, len(nodes))
	for i, n := range nodes {
		clones[i] = Clone(n)
	}
	return clones
}

// TextLength returns the total number of text bytes under the given nodes.
// Comments and attribute values do not count.
func TextLength(nodes []*html.Node) int {
	total := 0
	for _, n := range nodes {
		total += textLength(n)
	}
	return total
}

func textLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return len(n.Data)
	}

	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c)
	}
	return total
}

// Prefix returns deep clones of the longest run of leading siblings whose
// combined text length stays strictly under budget. The walk never descends:
// the first sibling that would reach the budget is dropped whole, along with
// everything after it. A zero or negative budget yields an empty list.
func Prefix(nodes []*html.Node, budget int) []*html.Node {
	var prefix []*html.Node

	remaining := budget
	for _, n := range nodes {
		l := textLength(n)
		if l >= remaining {
			break
		}
		prefix = append(prefix, Clone(n))
		remaining -= l
	}
	return prefix
}
