package extract

import (
	"regexp"
	"strings"

	"github.com/startwise/eventscribe/internal/model"
)

// Category identifies one kind of embedded resource link.
type Category int

const (
	CategoryVideo Category = iota
	CategoryChat
	CategoryTranscript
)

// categoryRule pairs a category's two extraction patterns with its
// placeholder. Pass A isolates the tagged substring from the raw extension
// text; pass B narrows it to the final URL. The video category only
// accepts hosts beginning with "drive": recording links live on Drive,
// anything else tagged video/mp4 is not a usable recording.
type categoryRule struct {
	source      *regexp.Regexp
	final       *regexp.Regexp
	placeholder string
}

var rules = map[Category]categoryRule{
	CategoryVideo: {
		source:      regexp.MustCompile(`video/mp4:https?://[^\s]+`),
		final:       regexp.MustCompile(`https?://drive[^\s]+`),
		placeholder: model.NoVideo,
	},
	CategoryChat: {
		source:      regexp.MustCompile(`text/plain:https?://[^\s]+`),
		final:       regexp.MustCompile(`https?://[^\s]+`),
		placeholder: model.NoChat,
	},
	CategoryTranscript: {
		source:      regexp.MustCompile(`document:https?://[^\s]+`),
		final:       regexp.MustCompile(`https?://[^\s]+`),
		placeholder: model.NoTranscript,
	},
}

// ExtractLinks populates the six URL fields of every row from its raw
// extension text. After this stage each field holds either a
// " , "-joined URL list (encounter order) or the category placeholder,
// never the empty string.
func ExtractLinks(table *model.Table) {
	for i := range table.Rows {
		row := &table.Rows[i]

		// Pass A: isolate the tagged substrings per category.
		row.SourceURL = joinOrPlaceholder(rules[CategoryVideo].source.FindAllString(row.Extra, -1), rules[CategoryVideo].placeholder)
		row.SourceCURL = joinOrPlaceholder(rules[CategoryChat].source.FindAllString(row.Extra, -1), rules[CategoryChat].placeholder)
		row.SourceTURL = joinOrPlaceholder(rules[CategoryTranscript].source.FindAllString(row.Extra, -1), rules[CategoryTranscript].placeholder)

		// Pass B: narrow each isolated substring to bare URLs. Scanning a
		// placeholder finds nothing, so the placeholder carries through.
		row.VideoURL = joinOrPlaceholder(rules[CategoryVideo].final.FindAllString(row.SourceURL, -1), rules[CategoryVideo].placeholder)
		row.ChatURL = joinOrPlaceholder(rules[CategoryChat].final.FindAllString(row.SourceCURL, -1), rules[CategoryChat].placeholder)
		row.TranscriptURL = joinOrPlaceholder(rules[CategoryTranscript].final.FindAllString(row.SourceTURL, -1), rules[CategoryTranscript].placeholder)
	}
}

func joinOrPlaceholder(matches []string, placeholder string) string {
	if len(matches) == 0 {
		return placeholder
	}
	return strings.Join(matches, model.URLJoin)
}
