// ABOUTME: Build command producing the configured HTML fragment
// ABOUTME: Fetches feeds, aggregates posts, renders, and writes the output

package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/harper/planet/internal/config"
	"github.com/harper/planet/internal/emit"
	"github.com/harper/planet/internal/feed"
	"github.com/harper/planet/internal/opml"
	"github.com/harper/planet/internal/post"
	"github.com/harper/planet/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build [sources...]",
	Short: "Render feeds into an HTML fragment",
	Long: `Fetch feed sources, merge their items newest first, and write the
rendered HTML fragment to stdout or --output.

Sources are feed URLs, optionally extended with the feeds of an --opml
subscription roll. In subscribers mode, sources are OPML file paths
instead and no fetching happens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		opmlPath, _ := cmd.Flags().GetString("opml")
		output, _ := cmd.Flags().GetString("output")
		target, _ := cmd.Flags().GetString("target")

		mode := cfg.RenderMode
		if modeFlag != "" {
			mode = config.Mode(modeFlag)
			if !mode.Valid() {
				return fmt.Errorf("unknown mode: %q", modeFlag)
			}
		}

		limit := cfg.PostLimit
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}

		var nodes []*html.Node
		var err error
		if mode == config.ModeSubscribers {
			nodes, err = buildSubscribers(args)
		} else {
			nodes, err = buildPosts(cmd, mode, args, opmlPath, limit, target)
		}
		if err != nil {
			return err
		}

		if output != "" {
			return emit.WriteFile(output, nodes)
		}
		return emit.Write(os.Stdout, nodes)
	},
}

// buildPosts runs the feed pipeline for the three post-based modes.
func buildPosts(cmd *cobra.Command, mode config.Mode, urls []string, opmlPath string, limit int, target string) ([]*html.Node, error) {
	sources, err := collectSources(urls, opmlPath)
	if err != nil {
		return nil, err
	}

	channels, _ := fetchChannels(cmd.Context(), sources)
	if len(channels) == 0 {
		return nil, fmt.Errorf("no sources could be fetched and parsed")
	}

	merged, err := feed.Aggregate(channels, limit)
	if err != nil {
		return nil, err
	}

	posts := lo.Map(merged.Items, func(item feed.Item, _ int) post.Post {
		return post.Normalize(item)
	})

	switch mode {
	case config.ModePosts:
		ids := render.NewIDAllocator("planet-toggle-")
		r := &render.PostRenderer{
			IDs:              ids,
			PlainTextAuthors: cfg.PlainAuthors(),
			Threshold:        cfg.TruncationThreshold,
		}
		nodes, err := r.RenderAll(posts)
		if err != nil {
			return nil, err
		}
		// The toggle script goes out once per document, and only when a
		// toggle was actually rendered.
		if ids.Allocated() > 0 {
			nodes = append(nodes, render.ToggleScript())
		}
		return nodes, nil
	case config.ModeHeadlines:
		r := &render.HeadlineRenderer{ImageURL: cfg.HeadlineImageURL, Target: target}
		return r.RenderAll(posts), nil
	case config.ModeEmailThreads:
		r := &render.ThreadRenderer{ImageURL: cfg.HeadlineImageURL}
		return r.RenderAll(posts), nil
	default:
		return nil, fmt.Errorf("unknown mode: %q", mode)
	}
}

// buildSubscribers renders the contributor list from OPML documents.
func buildSubscribers(paths []string) ([]*html.Node, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no outline documents given")
	}

	var contributors []opml.Contributor
	for _, path := range paths {
		doc, err := opml.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse outline %s: %w", path, err)
		}
		contributors = append(contributors, doc.Contributors()...)
	}

	return []*html.Node{render.Subscribers(contributors)}, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("mode", "", "render mode: posts, headlines, email_threads, subscribers")
	buildCmd.Flags().Int("limit", 0, "maximum number of posts (0 = unlimited)")
	buildCmd.Flags().String("opml", "", "OPML subscription roll to read feed URLs from")
	buildCmd.Flags().StringP("output", "o", "", "write the fragment to a file instead of stdout")
	buildCmd.Flags().String("target", "", "explicit link target for headlines mode")
}
