package summarize

import (
	"context"

	"github.com/startwise/eventscribe/internal/model"
)

// Tokenizer is the text-generation model's tokenization capability,
// loaded once at process start and reused for every chunk.
type Tokenizer interface {
	Encode(text string) []string
	Decode(tokens []string) string
}

// Generator produces a summary for one bounded chunk of transcript text.
type Generator interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Pauser throttles the summarizer between batches. The production
// implementation sleeps; tests inject a no-op.
type Pauser interface {
	Pause(ctx context.Context) error
}

// Summarizer fills each row's Summary from its chunks, in throttled
// batches, persisting the table incrementally to outputPath.
type Summarizer interface {
	Run(ctx context.Context, table *model.Table, outputPath string) error
}
