// ABOUTME: Email-thread headline rendering for mailing-list announcements
// ABOUTME: Strips Re: and list-tag prefixes and targets the monthly archive

package render

import (
	"regexp"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/post"
	"github.com/harper/planet/internal/timeutil"
)

// DefaultThreadArchiveRoot is the mailing-list archive the thread view
// links into when no other root is configured. No trailing slash; the
// renderer appends the month segment.
const DefaultThreadArchiveRoot = "https://lists.example.org/archives/news"

// threadPrefix matches the reply clutter at the front of mail subjects:
// any number of case-insensitive "Re:" tokens followed by one bracketed
// list-name tag. Subjects without a bracketed tag are left alone.
var threadPrefix = regexp.MustCompile(`^(?i:\s*(re:\s*)*)\[[^\]]*\]\s*`)

// ThreadRenderer builds the email-thread variant of the headline view.
// The post's own link is ignored; every block targets the list archive
// for the post's month.
type ThreadRenderer struct {
	// ImageURL is the icon shown for every thread.
	ImageURL string
	// ArchiveRoot overrides DefaultThreadArchiveRoot.
	ArchiveRoot string
}

// RenderAll renders posts in order and concatenates their thread blocks.
func (r *ThreadRenderer) RenderAll(posts []post.Post) []*html.Node {
	nodes := make([]*html.Node, 0, len(posts))
	for _, p := range posts {
		nodes = append(nodes, r.Render(p))
	}
	return nodes
}

// Render builds one thread block.
func (r *ThreadRenderer) Render(p post.Post) *html.Node {
	title := threadPrefix.ReplaceAllString(p.Title, "")
	return headline(title, r.target(p), r.ImageURL, p.Date)
}

// target points into the monthly thread index, or at the archive root when
// the post has no date.
func (r *ThreadRenderer) target(p post.Post) string {
	root := r.ArchiveRoot
	if root == "" {
		root = DefaultThreadArchiveRoot
	}
	if p.Date == nil {
		return root + "/"
	}
	return root + "/" + timeutil.ArchiveMonth(*p.Date) + "/thrd4.html"
}
