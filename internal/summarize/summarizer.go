package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/startwise/eventscribe/internal/model"
	"github.com/startwise/eventscribe/internal/sheet"
)

// Run summarizes every row's chunks in fixed-size batches. Each non-empty
// chunk is summarized independently; the per-chunk summaries are joined
// with a single space into the row's Summary. The table is persisted
// after every completed batch, so a failing batch never loses earlier
// results, and the pauser runs between batches (not after the last).
func (s *implSummarizer) Run(ctx context.Context, table *model.Table, outputPath string) error {
	if table.Len() == 0 {
		return s.persist(table, outputPath)
	}

	batchSize := s.batchSize
	if table.Len() < batchSize {
		batchSize = table.Len()
	}
	totalBatches := (table.Len() + batchSize - 1) / batchSize

	for start := 0; start < table.Len(); start += batchSize {
		stop := start + batchSize
		if stop > table.Len() {
			stop = table.Len()
		}

		current := start/batchSize + 1
		s.logger.Info(ctx, "Processing batch %d of %d", current, totalBatches)

		for i := start; i < stop; i++ {
			row := &table.Rows[i]
			summary, err := s.summarizeRow(ctx, *row)
			if err != nil {
				return fmt.Errorf("summarize row %d (%s): %w", row.Index, row.SourceID, err)
			}
			row.Summary = summary
		}

		if err := s.persist(table, outputPath); err != nil {
			return err
		}

		if stop < table.Len() {
			if err := s.pauser.Pause(ctx); err != nil {
				return fmt.Errorf("batch pause: %w", err)
			}
		}
	}

	s.logger.Info(ctx, "File exported: %s", outputPath)
	return nil
}

func (s *implSummarizer) summarizeRow(ctx context.Context, row model.Row) (string, error) {
	var summaries []string
	for _, chunk := range row.Chunks {
		if chunk == "" {
			continue
		}
		summary, err := s.gen.Summarize(ctx, s.truncate(chunk))
		if err != nil {
			return "", err
		}
		summaries = append(summaries, summary)
	}
	return strings.Join(summaries, " "), nil
}

// truncate re-tokenizes text and drops everything past the model's input
// limit. Chunks already respect the limit; this guards texts that did not
// come through the chunker.
func (s *implSummarizer) truncate(text string) string {
	tokens := s.tok.Encode(text)
	if len(tokens) <= s.maxTokens {
		return text
	}
	return s.tok.Decode(tokens[:s.maxTokens])
}

func (s *implSummarizer) persist(table *model.Table, path string) error {
	records, err := table.Records(model.SummaryColumns)
	if err != nil {
		return fmt.Errorf("persist summaries: %w", err)
	}
	if err := sheet.Write(path, model.SummaryColumns, records); err != nil {
		return fmt.Errorf("persist summaries: %w", err)
	}
	return nil
}
