// ABOUTME: Full-post HTML rendering with metadata lines and truncated bodies
// ABOUTME: Anchors every section with the post digest and wires toggle widgets

package render

import (
	"fmt"

	"github.com/tomakado/containers/set"
	"golang.org/x/net/html"

	"github.com/harper/planet/internal/markup"
	"github.com/harper/planet/internal/post"
	"github.com/harper/planet/internal/timeutil"
)

// feedIconURL is the small icon shown next to linked post titles.
const feedIconURL = "/images/feed-icon.png"

// metaSeparator opens every non-empty metadata line.
const metaSeparator = " — "

// PostRenderer builds the full-post view. PlainTextAuthors lists authors
// whose descriptions are shown verbatim in a pre block instead of being
// parsed as HTML; Threshold is the text length at which parsed descriptions
// collapse behind a toggle widget.
type PostRenderer struct {
	IDs              *IDAllocator
	PlainTextAuthors set.HashSet[string]
	Threshold        int
}

// RenderAll renders posts in order and concatenates their sections.
func (r *PostRenderer) RenderAll(posts []post.Post) ([]*html.Node, error) {
	var nodes []*html.Node
	for _, p := range posts {
		section, err := r.Render(p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, section)
	}
	return nodes, nil
}

// Render builds one post section. The section id is the post digest, so the
// fragment target survives re-renders regardless of post order.
func (r *PostRenderer) Render(p post.Post) (*html.Node, error) {
	anchor := post.Digest(p)

	section := markup.Element("section",
		markup.Attr("class", "post"),
		markup.Attr("id", anchor))
	markup.Append(section, r.titleBlock(p))

	if meta := r.metaLine(p); meta != nil {
		markup.Append(section, meta)
	}

	body, err := r.descriptionBlock(p, anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %q: %w", p.Title, err)
	}
	markup.Append(section, body...)

	return section, nil
}

func (r *PostRenderer) titleBlock(p post.Post) *html.Node {
	h1 := markup.Element("h1", markup.Attr("class", "post-title"))
	if p.Link == nil {
		markup.Append(h1, markup.Text(p.Title))
		return h1
	}

	title := markup.Element("a", markup.Attr("href", p.Link.String()))
	markup.Append(title, markup.Text(p.Title))

	img := markup.Element("img",
		markup.Attr("src", feedIconURL),
		markup.Attr("alt", "feed"))
	icon := markup.Element("a",
		markup.Attr("class", "feed-icon"),
		markup.Attr("href", p.Link.String()))
	markup.Append(icon, img)

	markup.Append(h1, title, markup.Text(" "), icon)
	return h1
}

// metaLine builds the byline from the non-empty parts. No author and no
// date yields no line at all.
func (r *PostRenderer) metaLine(p post.Post) *html.Node {
	if p.Author == "" && p.Date == nil {
		return nil
	}

	line := markup.Element("p", markup.Attr("class", "post-meta"))
	markup.Append(line, markup.Text(metaSeparator))

	switch {
	case p.Date == nil:
		markup.Append(line, r.authorNode(p))
	case p.Author == "":
		markup.Append(line, markup.Text(timeutil.FormatLong(*p.Date)))
	default:
		markup.Append(line, r.authorNode(p),
			markup.Text(", "+timeutil.FormatShort(*p.Date)))
	}
	return line
}

func (r *PostRenderer) authorNode(p post.Post) *html.Node {
	if p.Email == "" {
		return markup.Text(p.Author)
	}
	a := markup.Element("a", markup.Attr("href", "mailto:"+p.Email))
	markup.Append(a, markup.Text(p.Author))
	return a
}

// descriptionBlock interprets the description as markup unless the author
// is configured plain-text. Parsed descriptions longer than the threshold
// collapse behind a toggle widget; the clipped prefix stays visible.
func (r *PostRenderer) descriptionBlock(p post.Post, anchor string) ([]*html.Node, error) {
	if r.PlainTextAuthors != nil && r.PlainTextAuthors.Contains(p.Author) {
		pre := markup.Element("pre")
		markup.Append(pre, markup.Text(p.Description))
		return []*html.Node{pre}, nil
	}

	tree, err := markup.Fragment(p.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description: %w", err)
	}

	if markup.TextLength(tree) < r.Threshold {
		return tree, nil
	}
	return Toggle(r.IDs, markup.Prefix(tree, r.Threshold), tree, anchor), nil
}
