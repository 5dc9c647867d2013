package clean

import (
	"strings"

	"github.com/startwise/eventscribe/internal/model"
)

// Pass1 applies the deterministic cleaning steps, in this fixed order:
// stable sort ascending by date, drop rows without a video recording,
// drop exact duplicates, drop pod meetings. Idempotent: running it on
// already-clean data changes nothing. An empty result is valid.
func Pass1(table *model.Table) {
	table.SortByDate()
	table.Filter(func(r model.Row) bool { return r.SourceURL != model.NoVideo })
	table.Dedupe()
	table.Filter(func(r model.Row) bool { return !isPodTitle(r.Title) })
}

// isPodTitle matches the literal substrings "pod" or "Pod" anywhere in the
// title, case-sensitively. "tripod" matches; "PODCAST" does not.
func isPodTitle(title string) bool {
	return strings.Contains(title, "pod") || strings.Contains(title, "Pod")
}
