package clean

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/startwise/eventscribe/internal/model"
)

// Reviewer supplies the human decision for the manual review gate: given
// the candidate rows, return the indices to discard. Implementations may
// block indefinitely; there is no timeout on human input.
type Reviewer interface {
	Review(ctx context.Context, candidates []model.Row) ([]int, error)
}

// ReviewSmallEvents presents every row with at most maxGuests attendees to
// the reviewer and drops the indices it returns. Rows above the threshold
// are never candidates. An index not present in the table fails with
// model.ErrRowNotFound and leaves the table intact.
func ReviewSmallEvents(ctx context.Context, table *model.Table, maxGuests int, reviewer Reviewer) error {
	var candidates []model.Row
	for _, r := range table.Rows {
		if r.Guests <= maxGuests {
			candidates = append(candidates, r)
		}
	}

	discard, err := reviewer.Review(ctx, candidates)
	if err != nil {
		return fmt.Errorf("manual review: %w", err)
	}
	if len(discard) == 0 {
		return nil
	}

	// Only presented rows may be dropped.
	presented := make(map[int]bool, len(candidates))
	for _, r := range candidates {
		presented[r.Index] = true
	}
	for _, idx := range discard {
		if !presented[idx] {
			return fmt.Errorf("review returned index %d outside the candidate set: %w", idx, model.ErrRowNotFound)
		}
	}

	return table.Drop(discard)
}

// PromptReviewer is the production Reviewer: prints candidates and reads a
// comma-separated list of row indices (no spaces) from in.
type PromptReviewer struct {
	In  io.Reader
	Out io.Writer
}

func (p *PromptReviewer) Review(ctx context.Context, candidates []model.Row) ([]int, error) {
	fmt.Fprintln(p.Out, "Pause and review small groups")
	for _, r := range candidates {
		fmt.Fprintf(p.Out, "%4d  %-12s  %2d guests  %s\n",
			r.Index, r.Date.Format("2006-01-02"), r.Guests, r.Title)
	}
	fmt.Fprint(p.Out, "Add rows and press enter. (Separate with commas. No spaces): ")

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read review input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var indices []int
	for _, field := range strings.Split(line, ",") {
		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse row index %q: %w", field, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}
