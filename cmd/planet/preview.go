// ABOUTME: Preview command for inspecting aggregated posts in the terminal
// ABOUTME: Converts description HTML to Markdown and renders it with glamour

package main

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/planet/internal/feed"
	"github.com/harper/planet/internal/post"
	"github.com/harper/planet/internal/timeutil"
)

var previewCmd = &cobra.Command{
	Use:   "preview [sources...]",
	Short: "Preview aggregated posts in the terminal",
	Long: `Fetch feed sources and print the aggregated posts as readable text
instead of HTML. Descriptions are converted to Markdown and rendered for
the terminal. A debugging aid for checking what a build would publish.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opmlPath, _ := cmd.Flags().GetString("opml")

		sources, err := collectSources(args, opmlPath)
		if err != nil {
			return err
		}

		channels, _ := fetchChannels(cmd.Context(), sources)
		if len(channels) == 0 {
			return fmt.Errorf("no sources could be fetched and parsed")
		}

		merged, err := feed.Aggregate(channels, cfg.PostLimit)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		for _, item := range merged.Items {
			p := post.Normalize(item)

			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%s\n", bold(p.Title))
			if p.Author != "" {
				fmt.Printf("%s %s\n", faint("Author:"), p.Author)
			}
			if p.Date != nil {
				fmt.Printf("%s %s\n", faint("Published:"), timeutil.FormatLong(*p.Date))
			}
			if p.Link != nil {
				fmt.Printf("%s %s\n", faint("Link:"), cyan(p.Link.String()))
			}
			fmt.Printf("%s %s\n", faint("Anchor:"), post.Digest(p))

			if p.Description == "" {
				fmt.Println("\n(No description)")
				continue
			}

			markdown := descriptionMarkdown(p.Description)
			rendered, err := glamour.Render(markdown, "dark")
			if err != nil {
				// Fall back to plain markdown if rendering fails
				fmt.Printf("\n%s\n", markdown)
				continue
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

// descriptionMarkdown converts a description to Markdown for terminal
// display, falling back to the raw text when conversion fails.
func descriptionMarkdown(description string) string {
	markdown, err := htmltomarkdown.ConvertString(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(markdown)
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("opml", "", "OPML subscription roll to read feed URLs from")
}
