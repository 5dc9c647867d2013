package model

import (
	"reflect"
	"time"
)

// Placeholder sentinels for URL categories with no match. URL fields are
// never empty: they hold either a " , "-joined URL list or one of these.
const (
	NoVideo      = "No video"
	NoChat       = "No chat"
	NoTranscript = "No transcript"
)

// URLJoin separates multiple URLs within a single field.
const URLJoin = " , "

// Row is one extracted meeting record. It is created by the loader and
// mutated in place by each pipeline stage that owns the table.
type Row struct {
	// Index is assigned once by the loader, in input order, and survives
	// sorting and filtering. The review gate identifies rows by it.
	Index int

	SourceID  string
	Title     string
	Date      time.Time // date component of the event start
	Duration  string    // "{hours}:{minutes}", no zero padding
	Organizer string
	Guests    int
	Extra     string // raw extension payload, dropped at export

	// Intermediate per-category substrings from extraction pass A.
	SourceURL  string // video/mp4: matches
	SourceCURL string // text/plain: matches
	SourceTURL string // document: matches

	// Final per-category URLs from extraction pass B.
	VideoURL      string
	ChatURL       string
	TranscriptURL string

	// Output-schema fields, empty until populated by downstream tooling.
	Topics   string
	Type     string
	SubType  string
	Routing  string
	Comments string

	ID         string   // sequential position, assigned at export
	Transcript string   // populated externally between the two pipelines
	Chunks     []string // token-bounded transcript chunks
	Summary    string
}

// Equal reports whether two rows carry identical data. Index is a pipeline
// bookkeeping value, not data, and is excluded; duplicate detection must
// treat rows with the same content as equal regardless of position.
func (r Row) Equal(o Row) bool {
	if len(r.Chunks) != len(o.Chunks) {
		return false
	}
	for i := range r.Chunks {
		if r.Chunks[i] != o.Chunks[i] {
			return false
		}
	}
	r.Index, o.Index = 0, 0
	r.Chunks, o.Chunks = nil, nil
	return reflect.DeepEqual(r, o)
}
