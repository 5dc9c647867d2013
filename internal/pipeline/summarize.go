package pipeline

import (
	"context"
	"fmt"

	"github.com/startwise/eventscribe/internal/config"
	"github.com/startwise/eventscribe/internal/logger"
	"github.com/startwise/eventscribe/internal/summarize"
)

// Summarize is the transcript summarization pipeline: load a previously
// exported table, chunk each transcript by token count, summarize the
// chunks in throttled batches, persist, and optionally write per-meeting
// docx reports.
type Summarize struct {
	cfg    *config.Config
	tok    summarize.Tokenizer
	gen    summarize.Generator
	pauser summarize.Pauser
	logger logger.Logger
}

// NewSummarize creates the summarization pipeline with injected model
// capabilities and throttle.
func NewSummarize(cfg *config.Config, tok summarize.Tokenizer, gen summarize.Generator, pauser summarize.Pauser, log logger.Logger) *Summarize {
	return &Summarize{
		cfg:    cfg,
		tok:    tok,
		gen:    gen,
		pauser: pauser,
		logger: log,
	}
}

// Run executes the summarization stages in order.
func (p *Summarize) Run(ctx context.Context) error {
	p.logger.Info(ctx, "Loading export: %s", p.cfg.Summarize.Input)
	table, err := summarize.LoadExport(p.cfg.Summarize.Input)
	if err != nil {
		return err
	}
	p.logger.Info(ctx, "Loaded %d rows", table.Len())

	summarize.ChunkRows(p.tok, table, p.cfg.Summarize.MaxChunkTokens)

	summarizer := summarize.New(p.tok, p.gen, p.pauser, p.logger,
		p.cfg.Summarize.BatchSize, p.cfg.Summarize.MaxChunkTokens)
	if err := summarizer.Run(ctx, table, p.cfg.Summarize.Output); err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	if p.cfg.Summarize.ReportDir != "" {
		if err := summarize.WriteReports(p.cfg.Summarize.ReportDir, table); err != nil {
			return fmt.Errorf("write reports: %w", err)
		}
		p.logger.Info(ctx, "Reports written to %s", p.cfg.Summarize.ReportDir)
	}

	return nil
}
