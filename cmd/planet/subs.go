// ABOUTME: Subscription roll management commands
// ABOUTME: Lists, adds with feed discovery, and removes OPML subscriptions

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/planet/internal/discover"
	"github.com/harper/planet/internal/opml"
)

var subsFile string

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Manage the OPML subscription roll",
	Long:  "List, add, and remove feeds in the subscription roll that build --opml consumes.",
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribed feeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadSubs()
		if err != nil {
			return err
		}

		feeds := doc.AllFeeds()
		if len(feeds) == 0 {
			fmt.Println("No subscriptions. Add one with 'planet subs add <url>'")
			return nil
		}

		faint := color.New(color.Faint).SprintFunc()
		for _, f := range feeds {
			if f.Title != "" {
				fmt.Printf("%s %s\n", f.Title, faint(f.URL))
			} else {
				fmt.Println(f.URL)
			}
		}
		return nil
	},
}

var subsAddCmd = &cobra.Command{
	Use:   "add <url> [title]",
	Short: "Subscribe to a feed",
	Long: `Add a feed to the subscription roll. The URL may point at a site
rather than a feed; the feed is discovered from the page when needed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		found, err := discover.Discover(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to find a feed at %s: %w", args[0], err)
		}

		title := found.Title
		if len(args) == 2 {
			title = args[1]
		}

		doc, err := loadSubs()
		if err != nil {
			return err
		}
		if err := doc.AddFeed(found.URL, title); err != nil {
			return err
		}
		if err := doc.WriteFile(subsFile); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Subscribed to %s (%s)\n", green("v"), title, found.URL)
		return nil
	},
}

var subsRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Unsubscribe from a feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadSubs()
		if err != nil {
			return err
		}
		if err := doc.RemoveFeed(args[0]); err != nil {
			return err
		}
		if err := doc.WriteFile(subsFile); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Unsubscribed from %s\n", green("v"), args[0])
		return nil
	},
}

// loadSubs reads the subscription roll, starting an empty one when the
// file does not exist yet.
func loadSubs() (*opml.Document, error) {
	if _, err := os.Stat(subsFile); os.IsNotExist(err) {
		return opml.NewDocument("planet subscriptions"), nil
	}

	doc, err := opml.ParseFile(subsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	return doc, nil
}

func init() {
	rootCmd.AddCommand(subsCmd)
	subsCmd.AddCommand(subsListCmd, subsAddCmd, subsRemoveCmd)
	subsCmd.PersistentFlags().StringVar(&subsFile, "file", "subscriptions.opml", "subscription roll path")
}
