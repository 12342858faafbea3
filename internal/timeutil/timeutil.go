// ABOUTME: Date formatting helpers shared by the HTML renderers
// ABOUTME: Provides the long and short display forms and archive month segments

package timeutil

import "time"

const (
	// layoutLong is the spelled-out form used on headline and metadata lines.
	layoutLong = "January 2, 2006"
	// layoutShort is the abbreviated form used when an author is also shown.
	layoutShort = "Jan 2, 2006"
	// layoutArchiveMonth is the year-month segment of mailing-list archive URLs.
	layoutArchiveMonth = "2006-01"
)

// FormatLong renders a date as "January 2, 2006".
func FormatLong(t time.Time) string {
	return t.Format(layoutLong)
}

// FormatShort renders a date as "Jan 2, 2006".
func FormatShort(t time.Time) string {
	return t.Format(layoutShort)
}

// ArchiveMonth renders the "YYYY-MM" path segment for a date.
func ArchiveMonth(t time.Time) string {
	return t.Format(layoutArchiveMonth)
}
