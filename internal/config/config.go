// ABOUTME: Site configuration loaded from a YAML file
// ABOUTME: Covers render mode, truncation, limits, and plain-text authors

package config

import (
	"fmt"
	"os"

	"github.com/tomakado/containers/set"
	"gopkg.in/yaml.v3"
)

// Mode selects which fragment the build produces.
type Mode string

const (
	ModePosts        Mode = "posts"
	ModeHeadlines    Mode = "headlines"
	ModeEmailThreads Mode = "email_threads"
	ModeSubscribers  Mode = "subscribers"
)

// Valid reports whether m names a known render mode.
func (m Mode) Valid() bool {
	switch m {
	case ModePosts, ModeHeadlines, ModeEmailThreads, ModeSubscribers:
		return true
	}
	return false
}

// Config is the site configuration. Every field is optional; zero values
// are replaced by defaults when loading.
type Config struct {
	// PlainTextAuthors lists authors whose descriptions are rendered
	// verbatim instead of being parsed as HTML.
	PlainTextAuthors []string `yaml:"plain_text_authors"`

	// TruncationThreshold is the description text length at which the post
	// view collapses the body behind a read-more toggle.
	TruncationThreshold int `yaml:"truncation_threshold"`

	// PostLimit caps the number of aggregated posts. Zero means unlimited.
	PostLimit int `yaml:"post_limit"`

	// HeadlineImageURL is the icon used by the headline and thread views.
	HeadlineImageURL string `yaml:"headline_image_url"`

	// RenderMode picks the fragment to produce.
	RenderMode Mode `yaml:"render_mode"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TruncationThreshold: DefaultTruncationThreshold,
		HeadlineImageURL:    DefaultHeadlineImageURL,
		RenderMode:          ModePosts,
	}
}

// Load reads the configuration at path and fills in defaults for absent
// fields. A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if !cfg.RenderMode.Valid() {
		return nil, fmt.Errorf("unknown render_mode: %q", cfg.RenderMode)
	}
	if cfg.TruncationThreshold <= 0 {
		cfg.TruncationThreshold = DefaultTruncationThreshold
	}
	if cfg.HeadlineImageURL == "" {
		cfg.HeadlineImageURL = DefaultHeadlineImageURL
	}
	return cfg, nil
}

// PlainAuthors returns the plain-text author set for membership checks.
func (c *Config) PlainAuthors() set.HashSet[string] {
	return set.New(c.PlainTextAuthors...)
}
