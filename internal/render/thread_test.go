// ABOUTME: Tests for the email-thread headline renderer
// ABOUTME: Covers subject prefix stripping and archive target templating

package render

import (
	"net/url"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/harper/planet/internal/post"
)

func TestThreadRenderer_StripsSubjectPrefix(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"list tag only", "[news-list] Release 1.0", "Release 1.0"},
		{"single re", "Re: [news-list] Release 1.0", "Release 1.0"},
		{"stacked res", "RE: re: Re: [news-list] Release 1.0", "Release 1.0"},
		{"no bracketed tag", "Re: Release 1.0", "Re: Release 1.0"},
		{"plain title", "Release 1.0", "Release 1.0"},
		{"bracket mid-title untouched", "Release [beta] 1.0", "Release [beta] 1.0"},
	}

	r := &ThreadRenderer{ImageURL: "/img/news.png"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			div := r.Render(post.Post{Title: tt.title})
			if got := textContent(div); got != tt.want {
				t.Errorf("thread title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThreadRenderer_ArchiveTarget(t *testing.T) {
	r := &ThreadRenderer{ImageURL: "/img/news.png", ArchiveRoot: "https://lists.example.com/news"}
	date := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	div := r.Render(post.Post{Title: "Dated", Date: &date})
	want := "https://lists.example.com/news/2024-03/thrd4.html"
	for i, a := range findAll([]*html.Node{div}, "a") {
		if got := attrVal(a, "href"); got != want {
			t.Errorf("link %d href = %q, want %q", i, got, want)
		}
	}

	undated := r.Render(post.Post{Title: "Undated"})
	for i, a := range findAll([]*html.Node{undated}, "a") {
		if got := attrVal(a, "href"); got != "https://lists.example.com/news/" {
			t.Errorf("link %d href = %q, want the bare archive root", i, got)
		}
	}
}

func TestThreadRenderer_IgnoresPostLink(t *testing.T) {
	link, err := url.Parse("https://example.com/own-link")
	if err != nil {
		t.Fatal(err)
	}

	r := &ThreadRenderer{ImageURL: "/img/news.png"}
	div := r.Render(post.Post{Title: "Linked", Link: link})

	for i, a := range findAll([]*html.Node{div}, "a") {
		if got := attrVal(a, "href"); got == "https://example.com/own-link" {
			t.Errorf("link %d targets the post's own link, want the archive", i)
		}
	}
}

func TestThreadRenderer_DefaultRoot(t *testing.T) {
	r := &ThreadRenderer{ImageURL: "/img/news.png"}
	div := r.Render(post.Post{Title: "Undated"})

	links := findAll([]*html.Node{div}, "a")
	if len(links) == 0 {
		t.Fatal("no links rendered")
	}
	if got := attrVal(links[0], "href"); got != DefaultThreadArchiveRoot+"/" {
		t.Errorf("href = %q, want default root %q", got, DefaultThreadArchiveRoot+"/")
	}
}
