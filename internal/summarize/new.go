package summarize

import (
	"github.com/startwise/eventscribe/internal/logger"
)

type implSummarizer struct {
	tok       Tokenizer
	gen       Generator
	pauser    Pauser
	logger    logger.Logger
	batchSize int
	maxTokens int
}

// New creates a Summarizer. batchSize is the upper bound on rows per
// batch (capped by the table size at run time); maxTokens bounds the
// token count of any text handed to the generator.
func New(tok Tokenizer, gen Generator, pauser Pauser, log logger.Logger, batchSize, maxTokens int) Summarizer {
	return &implSummarizer{
		tok:       tok,
		gen:       gen,
		pauser:    pauser,
		logger:    log,
		batchSize: batchSize,
		maxTokens: maxTokens,
	}
}
