// ABOUTME: Tests for feed discovery strategies
// ABOUTME: Covers direct feeds, HTML alternate links, and failure cases

package discover

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const discoveryFeedXML = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Discovered Feed</title>
    <link>https://example.com</link>
    <item><title>Post</title></item>
  </channel>
</rss>`

func TestDiscover_DirectFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, discoveryFeedXML)
	}))
	defer server.Close()

	found, err := Discover(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if found.URL != server.URL {
		t.Errorf("URL = %q, want %q", found.URL, server.URL)
	}
	if found.Title != "Discovered Feed" {
		t.Errorf("Title = %q, want %q", found.Title, "Discovered Feed")
	}
}

func TestDiscover_HTMLAlternateLink(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
<link rel="alternate" type="application/rss+xml" title="Site Feed" href="/the-feed">
</head><body>hi</body></html>`)
	})
	mux.HandleFunc("/the-feed", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, discoveryFeedXML)
	})

	found, err := Discover(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if want := server.URL + "/the-feed"; found.URL != want {
		t.Errorf("URL = %q, want %q", found.URL, want)
	}
}

func TestDiscover_CommonPathProbe(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><head></head><body>no links here</body></html>")
	})
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, discoveryFeedXML)
	})

	found, err := Discover(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if want := server.URL + "/feed.xml"; found.URL != want {
		t.Errorf("URL = %q, want %q", found.URL, want)
	}
}

func TestDiscover_NothingFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			fmt.Fprint(w, "<html><body>plain page</body></html>")
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := Discover(context.Background(), server.URL)
	if !errors.Is(err, ErrNoFeedFound) {
		t.Fatalf("Discover() error = %v, want ErrNoFeedFound", err)
	}
}

func TestDiscover_InvalidURL(t *testing.T) {
	tests := []string{"", "not-a-url", "/relative/path"}
	for _, input := range tests {
		if _, err := Discover(context.Background(), input); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Discover(%q) error = %v, want ErrInvalidURL", input, err)
		}
	}
}
