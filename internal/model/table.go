package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrRowNotFound is returned when a row index supplied to the review gate
// does not exist in the table.
var ErrRowNotFound = errors.New("row not found")

// Table is the mutable record set threaded sequentially through the
// pipeline stages. Exactly one stage owns it at a time.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// SortByDate stable-sorts rows ascending by date. Rows with equal dates
// keep their relative order.
func (t *Table) SortByDate() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Date.Before(t.Rows[j].Date)
	})
}

// Filter keeps only rows for which keep returns true, preserving order.
func (t *Table) Filter(keep func(Row) bool) {
	out := t.Rows[:0]
	for _, r := range t.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	t.Rows = out
}

// Dedupe removes rows whose data exactly matches an earlier row. The first
// occurrence wins.
func (t *Table) Dedupe() {
	out := t.Rows[:0]
	for _, r := range t.Rows {
		dup := false
		for _, kept := range out {
			if kept.Equal(r) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	t.Rows = out
}

// Drop removes the rows with the given indices. Every index must exist;
// an unknown index returns ErrRowNotFound and leaves the table unchanged.
func (t *Table) Drop(indices []int) error {
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if !t.contains(idx) {
			return fmt.Errorf("drop row %d: %w", idx, ErrRowNotFound)
		}
		drop[idx] = true
	}
	t.Filter(func(r Row) bool { return !drop[r.Index] })
	return nil
}

func (t *Table) contains(index int) bool {
	for _, r := range t.Rows {
		if r.Index == index {
			return true
		}
	}
	return false
}
