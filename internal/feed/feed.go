// ABOUTME: Feed parsing into the channel and item values shared by every render mode
// ABOUTME: Wraps gofeed with an RSS translator that keeps guid isPermaLink flags

package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
	"github.com/samber/lo"
)

// guidPermalinkKey stashes the RSS isPermaLink flag in gofeed's Custom map,
// which is the only per-item extension point the universal Item offers.
const guidPermalinkKey = "guidIsPermalink"

// GUID is a feed item identifier. IsPermalink reports whether the feed
// asserts the value is a resolvable URL for the item.
type GUID struct {
	Value       string
	IsPermalink bool
}

// Item is one entry of a parsed feed, before normalization.
// Every field may be empty; GUID and Date are nil when absent.
type Item struct {
	Title       string
	Link        string
	GUID        *GUID
	Date        *time.Time
	Email       string
	Description string
}

// Channel is a feed's metadata plus its items, in document order.
type Channel struct {
	Title       string
	Link        string
	Description string
	Items       []Item
}

// SourceError records a feed source that could not be fetched or parsed.
// Failures are collected per source so the remaining sources keep flowing.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Parser turns raw feed documents into Channels. It handles RSS, Atom, and
// JSON Feed input via gofeed's format detection.
type Parser struct {
	inner *gofeed.Parser
}

// NewParser creates a Parser with permalink-aware RSS translation.
func NewParser() *Parser {
	p := gofeed.NewParser()
	p.RSSTranslator = &permalinkTranslator{
		defaultTranslator: &gofeed.DefaultRSSTranslator{},
	}
	return &Parser{inner: p}
}

// Parse decodes one feed document into a Channel.
func (p *Parser) Parse(data []byte) (Channel, error) {
	parsed, err := p.inner.Parse(bytes.NewReader(data))
	if err != nil {
		return Channel{}, fmt.Errorf("failed to parse feed: %w", err)
	}

	return Channel{
		Title:       parsed.Title,
		Link:        parsed.Link,
		Description: parsed.Description,
		Items: lo.Map(parsed.Items, func(item *gofeed.Item, _ int) Item {
			return buildItem(item)
		}),
	}, nil
}

func buildItem(item *gofeed.Item) Item {
	built := Item{
		Title: item.Title,
		Link:  item.Link,
		Date:  cmp.Or(item.PublishedParsed, item.UpdatedParsed),
		// Prefer the full content body over the summary when both exist.
		Description: cmp.Or(item.Content, item.Description),
	}

	if item.Author != nil {
		built.Email = item.Author.Email
	}

	if item.GUID != "" {
		built.GUID = &GUID{
			Value: item.GUID,
			// Atom and JSON Feed ids never assert permalink status, so the
			// flag only turns true when the RSS translator recorded it.
			IsPermalink: item.Custom[guidPermalinkKey] == "true",
		}
	}
	return built
}

// permalinkTranslator runs the stock RSS translation and then copies each
// guid's isPermaLink attribute into the universal item, which otherwise
// drops it.
type permalinkTranslator struct {
	defaultTranslator *gofeed.DefaultRSSTranslator
}

func (t *permalinkTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	rssFeed, ok := feed.(*rss.Feed)
	if !ok {
		return nil, fmt.Errorf("feed did not match expected type of *rss.Feed")
	}

	translated, err := t.defaultTranslator.Translate(rssFeed)
	if err != nil {
		return nil, err
	}

	for i, item := range rssFeed.Items {
		if item == nil || item.GUID == nil || i >= len(translated.Items) {
			continue
		}

		// RSS 2.0 treats a guid without an isPermaLink attribute as a permalink.
		permalink := !strings.EqualFold(item.GUID.IsPermalink, "false")
		if translated.Items[i].Custom == nil {
			translated.Items[i].Custom = make(map[string]string)
		}
		translated.Items[i].Custom[guidPermalinkKey] = strconv.FormatBool(permalink)
	}
	return translated, nil
}
