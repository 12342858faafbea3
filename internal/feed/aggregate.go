// ABOUTME: Merges parsed channels into a single chronological channel
// ABOUTME: Sorts newest first with undated items last and applies an item limit

package feed

import (
	"cmp"
	"errors"
	"sort"
)

// ErrNoChannels reports an aggregation call with nothing to aggregate.
// Callers are expected to treat this as invalid input, not a feed failure.
var ErrNoChannels = errors.New("no channels to aggregate")

// Aggregate combines channels into one. A single channel passes through with
// its item order intact. Multiple channels are merged and their items sorted
// by date, newest first, with undated items after all dated ones; the sort is
// stable, so items that tie keep their channel order. A positive limit keeps
// only the first limit items; zero or negative keeps everything.
func Aggregate(channels []Channel, limit int) (Channel, error) {
	if len(channels) == 0 {
		return Channel{}, ErrNoChannels
	}

	merged := channels[0]
	if len(channels) > 1 {
		merged = mergeChannels(channels)
		sortItems(merged.Items)
	}

	if limit > 0 && len(merged.Items) > limit {
		merged.Items = merged.Items[:limit]
	}
	return merged, nil
}

// mergeChannels concatenates items in channel order. Each metadata field
// takes the first non-empty value across channels.
func mergeChannels(channels []Channel) Channel {
	var merged Channel
	for _, ch := range channels {
		merged.Title = cmp.Or(merged.Title, ch.Title)
		merged.Link = cmp.Or(merged.Link, ch.Link)
		merged.Description = cmp.Or(merged.Description, ch.Description)
		merged.Items = append(merged.Items, ch.Items...)
	}
	return merged
}

func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].Date, items[j].Date
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.After(*dj)
		}
	})
}
