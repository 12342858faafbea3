// ABOUTME: Shared feed source collection for build and preview
// ABOUTME: Fetches and parses each source with colored per-source progress

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/harper/planet/internal/feed"
	"github.com/harper/planet/internal/fetch"
	"github.com/harper/planet/internal/opml"
)

// collectSources combines positional feed URLs with the feeds of an
// optional OPML subscription roll, in that order.
func collectSources(urls []string, opmlPath string) ([]string, error) {
	sources := append([]string{}, urls...)

	if opmlPath != "" {
		doc, err := opml.ParseFile(opmlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load subscriptions: %w", err)
		}
		for _, f := range doc.AllFeeds() {
			sources = append(sources, f.URL)
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no feed sources given; pass URLs or --opml")
	}
	return sources, nil
}

// fetchChannels fetches and parses every source. Failures are collected
// per source and reported; the remaining sources keep flowing. Progress
// goes to stderr so the fragment on stdout stays clean.
func fetchChannels(ctx context.Context, sources []string) ([]feed.Channel, []*feed.SourceError) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	parser := feed.NewParser()
	var channels []feed.Channel
	var failures []*feed.SourceError

	for _, source := range sources {
		fmt.Fprintf(os.Stderr, "Fetching %s... ", source)

		body, err := fetch.Fetch(ctx, source)
		if err == nil {
			var ch feed.Channel
			ch, err = parser.Parse(body)
			if err == nil {
				fmt.Fprintf(os.Stderr, "%s %d items\n", green("v"), len(ch.Items))
				channels = append(channels, ch)
				continue
			}
		}

		fmt.Fprintf(os.Stderr, "%s %v\n", red("x"), err)
		srcErr := &feed.SourceError{Source: source, Err: err}
		failures = append(failures, srcErr)
		log.WithField("source", source).Warnf("Skipping source: %v", err)
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "\n%s %d of %d sources failed\n", red("x"), len(failures), len(sources))
	}
	return channels, failures
}
