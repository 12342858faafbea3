// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads the site config and wires logging verbosity

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harper/planet/internal/config"
)

var (
	configPath string
	verbose    bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "planet",
	Short: "Feed-to-HTML fragment generator for static sites",
	Long: `planet turns syndication feeds into ready-to-embed HTML fragments.

It fetches RSS/Atom feeds, merges their items newest first, and renders
one of four fragments: full posts with read-more truncation, condensed
headlines, email-thread headlines, or a subscriber list from an OPML
subscription roll. Each run regenerates its fragment from scratch.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log.WithFields(log.Fields{
			"config": path,
			"mode":   cfg.RenderMode,
		}).Debug("Configuration loaded")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: planet.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
