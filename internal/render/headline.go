// ABOUTME: Condensed headline rendering with icon and title links
// ABOUTME: Targets the site archive page anchored by the post digest

package render

import (
	"time"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/markup"
	"github.com/harper/planet/internal/post"
	"github.com/harper/planet/internal/timeutil"
)

// DefaultArchivePage is the site page headline links target when no
// explicit target URL is configured; the post digest is appended as the
// fragment.
const DefaultArchivePage = "/news/archive.html"

// HeadlineRenderer builds the condensed list view: an optional date line,
// a linked icon, and a linked title. Descriptions are never shown.
type HeadlineRenderer struct {
	// ImageURL is the icon shown for every headline.
	ImageURL string
	// Target overrides the per-post link target. When empty, each headline
	// points at the archive page with the post's own anchor.
	Target string
}

// RenderAll renders posts in order and concatenates their headline blocks.
func (r *HeadlineRenderer) RenderAll(posts []post.Post) []*html.Node {
	nodes := make([]*html.Node, 0, len(posts))
	for _, p := range posts {
		nodes = append(nodes, r.Render(p))
	}
	return nodes
}

// Render builds one headline block.
func (r *HeadlineRenderer) Render(p post.Post) *html.Node {
	return headline(p.Title, r.target(p), r.ImageURL, p.Date)
}

func (r *HeadlineRenderer) target(p post.Post) string {
	if r.Target != "" {
		return r.Target
	}
	return DefaultArchivePage + "#" + post.Digest(p)
}

// headline is the block shape shared with the email-thread view: date line
// when dated, then the linked icon, then the linked title.
func headline(title, target, imageURL string, date *time.Time) *html.Node {
	div := markup.Element("div", markup.Attr("class", "headline"))

	if date != nil {
		line := markup.Element("p", markup.Attr("class", "headline-date"))
		markup.Append(line, markup.Text(timeutil.FormatLong(*date)))
		markup.Append(div, line)
	}

	img := markup.Element("img",
		markup.Attr("src", imageURL),
		markup.Attr("alt", ""))
	icon := markup.Element("a", markup.Attr("href", target))
	markup.Append(icon, img)

	titleLink := markup.Element("a", markup.Attr("href", target))
	markup.Append(titleLink, markup.Text(title))
	h2 := markup.Element("h2", markup.Attr("class", "headline-title"))
	markup.Append(h2, titleLink)

	markup.Append(div, icon, h2)
	return div
}
