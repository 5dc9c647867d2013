// Package pipeline wires the individual stages into the two runnable
// pipelines: calendar extraction and transcript summarization. Each runs
// once over one input and terminates.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/startwise/eventscribe/internal/calendar"
	"github.com/startwise/eventscribe/internal/clean"
	"github.com/startwise/eventscribe/internal/config"
	"github.com/startwise/eventscribe/internal/extract"
	"github.com/startwise/eventscribe/internal/logger"
)

// Extract is the calendar extraction pipeline: load events, extract
// resource links, clean, pause for manual review, export.
type Extract struct {
	cfg      *config.Config
	reviewer clean.Reviewer
	logger   logger.Logger
}

// NewExtract creates the extraction pipeline. The reviewer is injected so
// the manual gate can be faked in tests.
func NewExtract(cfg *config.Config, reviewer clean.Reviewer, log logger.Logger) *Extract {
	return &Extract{
		cfg:      cfg,
		reviewer: reviewer,
		logger:   log,
	}
}

// Run executes the pipeline stages in order. Any stage failure aborts the
// run; there is no retry.
func (p *Extract) Run(ctx context.Context) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Loading calendar: %s", p.cfg.Calendar.Path)
	events, err := calendar.Load(p.cfg.Calendar.Path)
	if err != nil {
		return fmt.Errorf("load calendar: %w", err)
	}
	p.logger.Info(ctx, "Parsed %d events", len(events))

	start := p.cfg.Calendar.Start.Time()
	end := p.cfg.Calendar.End.Time()
	table := extract.LoadRows(events, start, end)
	p.logger.Info(ctx, "Loaded %d rows in range %s to %s",
		table.Len(), start.Format("2006-01-02"), end.Format("2006-01-02"))

	extract.ExtractLinks(table)

	before := table.Len()
	clean.Pass1(table)
	p.logger.Info(ctx, "Cleaning pass 1: %d rows kept, %d dropped", table.Len(), before-table.Len())

	before = table.Len()
	if err := clean.ReviewSmallEvents(ctx, table, p.cfg.Review.MaxGuests, p.reviewer); err != nil {
		return err
	}
	p.logger.Info(ctx, "Manual review: %d rows dropped", before-table.Len())

	if err := clean.Pass2(table, p.cfg.Export.Path); err != nil {
		return err
	}

	p.logger.Info(ctx, "Exported %d rows to %s in %s",
		table.Len(), p.cfg.Export.Path, time.Since(startTime).Round(time.Millisecond))
	return nil
}
