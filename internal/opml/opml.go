// ABOUTME: OPML parsing and writing for subscription rolls
// ABOUTME: Flattens nested outlines into feeds and contributor records

package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Document is a parsed OPML outline document.
type Document struct {
	Title    string
	Outlines []Outline
}

// Outline is one node of the outline tree. A node with an XMLURL is a feed
// subscription; HTMLURL points at the contributor's site when present.
type Outline struct {
	Text     string
	Title    string
	Type     string
	XMLURL   string
	HTMLURL  string
	Children []Outline
}

// Feed is a flattened subscription entry.
type Feed struct {
	URL   string
	Title string
}

// Contributor is one subscriber-list record extracted from an outline.
type Contributor struct {
	Name string
	URL  string
}

type opmlXML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    headXML  `xml:"head"`
	Body    bodyXML  `xml:"body"`
}

type headXML struct {
	Title string `xml:"title"`
}

type bodyXML struct {
	Outlines []outlineXML `xml:"outline"`
}

type outlineXML struct {
	Text     string       `xml:"text,attr"`
	Title    string       `xml:"title,attr,omitempty"`
	Type     string       `xml:"type,attr,omitempty"`
	XMLURL   string       `xml:"xmlUrl,attr,omitempty"`
	HTMLURL  string       `xml:"htmlUrl,attr,omitempty"`
	Children []outlineXML `xml:"outline,omitempty"`
}

// NewDocument creates an empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// Parse reads an OPML document from r.
func Parse(r io.Reader) (*Document, error) {
	var parsed opmlXML
	if err := xml.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode OPML: %w", err)
	}

	doc := &Document{
		Title:    parsed.Head.Title,
		Outlines: make([]Outline, len(parsed.Body.Outlines)),
	}
	for i, outline := range parsed.Body.Outlines {
		doc.Outlines[i] = outlineFromXML(outline)
	}
	return doc, nil
}

// ParseFile reads an OPML document from a file.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// AllFeeds returns every feed subscription in the document, in outline
// order, descending into nested outlines.
func (d *Document) AllFeeds() []Feed {
	var feeds []Feed
	walk(d.Outlines, func(o Outline) {
		if o.XMLURL != "" {
			feeds = append(feeds, Feed{URL: o.XMLURL, Title: displayName(o)})
		}
	})
	return feeds
}

// Contributors extracts subscriber-list records from the document. The
// name comes from the text attribute with title as fallback; the URL
// prefers htmlUrl over xmlUrl. Outlines missing either part are skipped
// and logged rather than failing the whole document, so one sloppy entry
// cannot sink the page; the log line makes the gap visible.
func (d *Document) Contributors() []Contributor {
	var contributors []Contributor
	walk(d.Outlines, func(o Outline) {
		name := displayName(o)
		u := o.HTMLURL
		if u == "" {
			u = o.XMLURL
		}

		if name == "" || u == "" {
			if name == "" && u == "" {
				// Pure grouping node, nothing to report.
				return
			}
			log.WithFields(log.Fields{
				"document": d.Title,
				"text":     o.Text,
				"url":      u,
			}).Warn("Skipping outline entry with missing name or URL")
			return
		}
		contributors = append(contributors, Contributor{Name: name, URL: u})
	})
	return contributors
}

// AddFeed appends a subscription at the top level. Adding a URL that is
// already present anywhere in the document is an error.
func (d *Document) AddFeed(url, title string) error {
	for _, feed := range d.AllFeeds() {
		if feed.URL == url {
			return fmt.Errorf("feed with URL %s already exists", url)
		}
	}

	d.Outlines = append(d.Outlines, Outline{
		Text:   title,
		Title:  title,
		Type:   "rss",
		XMLURL: url,
	})
	return nil
}

// RemoveFeed removes the subscription with the given URL, wherever it
// nests in the outline tree.
func (d *Document) RemoveFeed(url string) error {
	if removeFromOutlines(&d.Outlines, url) {
		return nil
	}
	return fmt.Errorf("feed not found: %s", url)
}

// Write serializes the document as OPML 2.0.
func (d *Document) Write(w io.Writer) error {
	out := opmlXML{
		Version: "2.0",
		Head:    headXML{Title: d.Title},
		Body:    bodyXML{Outlines: make([]outlineXML, len(d.Outlines))},
	}
	for i, outline := range d.Outlines {
		out.Body.Outlines[i] = outlineToXML(outline)
	}

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode OPML: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return d.Write(file)
}

func walk(outlines []Outline, visit func(Outline)) {
	for _, o := range outlines {
		visit(o)
		walk(o.Children, visit)
	}
}

func removeFromOutlines(outlines *[]Outline, url string) bool {
	for i := range *outlines {
		if (*outlines)[i].XMLURL == url {
			*outlines = append((*outlines)[:i], (*outlines)[i+1:]...)
			return true
		}
		if removeFromOutlines(&(*outlines)[i].Children, url) {
			return true
		}
	}
	return false
}

func displayName(o Outline) string {
	if o.Text != "" {
		return o.Text
	}
	return o.Title
}

func outlineFromXML(x outlineXML) Outline {
	o := Outline{
		Text:     x.Text,
		Title:    x.Title,
		Type:     x.Type,
		XMLURL:   x.XMLURL,
		HTMLURL:  x.HTMLURL,
		Children: make([]Outline, len(x.Children)),
	}
	for i, child := range x.Children {
		o.Children[i] = outlineFromXML(child)
	}
	return o
}

func outlineToXML(o Outline) outlineXML {
	x := outlineXML{
		Text:     o.Text,
		Title:    o.Title,
		Type:     o.Type,
		XMLURL:   o.XMLURL,
		HTMLURL:  o.HTMLURL,
		Children: make([]outlineXML, len(o.Children)),
	}
	for i, child := range o.Children {
		x.Children[i] = outlineToXML(child)
	}
	return x
}
