// ABOUTME: Centralized configuration defaults for planet
// ABOUTME: Default paths, thresholds, and the config file name

package config

const (
	// DefaultPath is the config file looked up when --config is not given.
	DefaultPath = "planet.yaml"

	// DefaultTruncationThreshold is the description length at which post
	// bodies collapse behind a toggle.
	DefaultTruncationThreshold = 1200

	// DefaultHeadlineImageURL is the icon for headline and thread views.
	DefaultHeadlineImageURL = "/img/news.png"
)
