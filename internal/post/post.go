// ABOUTME: Canonical post representation shared by every renderer
// ABOUTME: Normalizes raw feed items and derives stable permalink digests

package post

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"regexp"
	"time"

	"github.com/harper/planet/internal/feed"
)

// Post is the renderer-agnostic form of one story. Author and Title come
// from a single split of the raw item title and are never edited afterward;
// identity is always recomputed from Title and Link by Digest, so posts
// carry no id field of their own.
type Post struct {
	Title       string
	Link        *url.URL
	Date        *time.Time
	Author      string
	Email       string
	Description string
}

// titleSplit matches an author prefix: everything before the first colon,
// with any spaces or tabs around the colon absorbed by the separator.
var titleSplit = regexp.MustCompile(`(?s)^(.*?)[ \t]*:[ \t]*(.*)$`)

// Normalize maps a raw feed item to a Post. Date, email, and description
// pass through unchanged; the title split and link resolution are the only
// derivations.
func Normalize(item feed.Item) Post {
	p := Post{
		Title:       item.Title,
		Link:        resolveLink(item),
		Date:        item.Date,
		Email:       item.Email,
		Description: item.Description,
	}

	if m := titleSplit.FindStringSubmatch(item.Title); m != nil {
		p.Author = m[1]
		p.Title = m[2]
	}
	return p
}

// resolveLink picks the post link, first match wins:
//
//  1. a permalink guid that parses as a URL
//  2. the item's explicit link
//  3. a name guid that happens to parse as a URL
//
// A guid value that fails to parse is not an error; that branch simply
// yields no candidate and resolution moves on. Items matching none of the
// branches have no link.
func resolveLink(item feed.Item) *url.URL {
	if item.GUID != nil && item.GUID.IsPermalink {
		if u := parseURL(item.GUID.Value); u != nil {
			return u
		}
	}

	if item.Link != "" {
		if u := parseURL(item.Link); u != nil {
			return u
		}
	}

	if item.GUID != nil && !item.GUID.IsPermalink {
		// Some feeds put a plain URL in a guid they tagged as a name.
		if u := parseURL(item.GUID.Value); u != nil {
			return u
		}
	}
	return nil
}

func parseURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return u
}

// Digest returns the stable anchor identifier for a post: a truncated hex
// sha256 over the title, plus the link when one exists. Only Title and Link
// participate, so re-rendering with different dates, authors, or bodies
// never moves a published fragment.
func Digest(p Post) string {
	h := sha256.New()
	h.Write([]byte(p.Title))
	if p.Link != nil {
		h.Write([]byte(p.Link.String()))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
