package extract

import (
	"testing"

	"github.com/startwise/eventscribe/internal/model"
)

func tableWithExtra(extra string) *model.Table {
	return &model.Table{Rows: []model.Row{{Index: 0, Extra: extra}}}
}

func TestExtractLinksAllCategories(t *testing.T) {
	extra := "ATTACH;FMTTYPE=video/mp4:https://drive.google.com/file/d/abc\n" +
		"ATTACH;FMTTYPE=text/plain:https://chat.example.com/log.txt\n" +
		"ATTACH;FMTTYPE=application/vnd.google-apps.document:https://docs.google.com/document/d/xyz\n"

	table := tableWithExtra(extra)
	ExtractLinks(table)
	row := table.Rows[0]

	if row.VideoURL != "https://drive.google.com/file/d/abc" {
		t.Errorf("VideoURL = %q", row.VideoURL)
	}
	if row.ChatURL != "https://chat.example.com/log.txt" {
		t.Errorf("ChatURL = %q", row.ChatURL)
	}
	if row.TranscriptURL != "https://docs.google.com/document/d/xyz" {
		t.Errorf("TranscriptURL = %q", row.TranscriptURL)
	}
}

func TestExtractLinksPlaceholders(t *testing.T) {
	table := tableWithExtra("DESCRIPTION:weekly catch-up, no attachments")
	ExtractLinks(table)
	row := table.Rows[0]

	if row.SourceURL != model.NoVideo || row.VideoURL != model.NoVideo {
		t.Errorf("video fields = %q / %q, want placeholder", row.SourceURL, row.VideoURL)
	}
	if row.SourceCURL != model.NoChat || row.ChatURL != model.NoChat {
		t.Errorf("chat fields = %q / %q, want placeholder", row.SourceCURL, row.ChatURL)
	}
	if row.SourceTURL != model.NoTranscript || row.TranscriptURL != model.NoTranscript {
		t.Errorf("transcript fields = %q / %q, want placeholder", row.SourceTURL, row.TranscriptURL)
	}
}

func TestExtractLinksFieldsNeverEmpty(t *testing.T) {
	extras := []string{
		"",
		"no links here",
		"ATTACH;FMTTYPE=video/mp4:https://drive.google.com/v",
	}

	for _, extra := range extras {
		table := tableWithExtra(extra)
		ExtractLinks(table)
		row := table.Rows[0]
		for name, field := range map[string]string{
			"SourceURL": row.SourceURL, "SourceCURL": row.SourceCURL, "SourceTURL": row.SourceTURL,
			"VideoURL": row.VideoURL, "ChatURL": row.ChatURL, "TranscriptURL": row.TranscriptURL,
		} {
			if field == "" {
				t.Errorf("extra %q: %s is empty", extra, name)
			}
		}
	}
}

func TestExtractLinksVideoDomainConstraint(t *testing.T) {
	// Pass A matches the video/mp4 tag, but the URL is not on Drive:
	// pass B must reject it.
	table := tableWithExtra("ATTACH;FMTTYPE=video/mp4:https://example.com/recording.mp4")
	ExtractLinks(table)
	row := table.Rows[0]

	if row.SourceURL == model.NoVideo {
		t.Fatalf("pass A should have matched, got %q", row.SourceURL)
	}
	if row.VideoURL != model.NoVideo {
		t.Errorf("VideoURL = %q, want %q for non-drive host", row.VideoURL, model.NoVideo)
	}
}

func TestExtractLinksMultipleMatches(t *testing.T) {
	extra := "ATTACH;FMTTYPE=video/mp4:https://drive.google.com/a\n" +
		"ATTACH;FMTTYPE=video/mp4:https://drive.google.com/b\n"

	table := tableWithExtra(extra)
	ExtractLinks(table)
	row := table.Rows[0]

	want := "https://drive.google.com/a" + model.URLJoin + "https://drive.google.com/b"
	if row.VideoURL != want {
		t.Errorf("VideoURL = %q, want %q (encounter order, joined)", row.VideoURL, want)
	}
}
