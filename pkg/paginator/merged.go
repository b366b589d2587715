package paginator

import (
	"context"
	"errors"
)

// Merged interleaves several category paginators into one lazy
// sequence ordered by descending timestamp.
//
// Each source keeps at most one fetched page buffered (lookahead of
// one), so the merge never materializes full histories. When two
// sources expose items with identical timestamps the tie is broken by
// the larger id, then by the earlier construction-order source, which
// keeps the output deterministic across runs.
type Merged[T Entry] struct {
	sources []*mergeSource[T]

	remaining int // -1 when unbounded
	stopID    int64
	primed    bool
	done      bool
}

type mergeSource[T Entry] struct {
	cursor *Cursor[T]
	buf    []T
}

// NewMerged creates a k-way merge over the given category paginators.
// The slice order fixes the tie-break priority. The sources must be
// exclusively owned by the merge from this point on.
func NewMerged[T Entry](cursors []*Cursor[T], opts Options) *Merged[T] {
	sources := make([]*mergeSource[T], len(cursors))
	for i, c := range cursors {
		sources[i] = &mergeSource[T]{cursor: c}
	}
	remaining := opts.Limit
	if remaining <= 0 {
		remaining = -1
	}
	return &Merged[T]{
		sources:   sources,
		remaining: remaining,
		stopID:    opts.StopID,
	}
}

// refill fetches pages for a source until it has items or is
// exhausted. A full page can come back empty after de-duplication, so
// this loops rather than fetching once.
func (m *Merged[T]) refill(ctx context.Context, s *mergeSource[T]) error {
	for len(s.buf) == 0 && !s.cursor.Exhausted() {
		page, err := s.cursor.NextPage(ctx)
		if err != nil {
			return err
		}
		s.buf = page
	}
	return nil
}

// Next returns the globally newest remaining item across all sources,
// or Done when every source is drained, the limit is reached, or the
// stop id cutoff is hit.
func (m *Merged[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if m.done || m.remaining == 0 {
		return zero, Done
	}

	if !m.primed {
		for _, s := range m.sources {
			if err := m.refill(ctx, s); err != nil {
				return zero, err
			}
		}
		m.primed = true
	}

	var best *mergeSource[T]
	for _, s := range m.sources {
		if len(s.buf) == 0 {
			continue
		}
		if best == nil {
			best = s
			continue
		}
		head, lead := s.buf[0], best.buf[0]
		if head.EntryTime().After(lead.EntryTime()) {
			best = s
			continue
		}
		if head.EntryTime().Equal(lead.EntryTime()) && head.EntryID() > lead.EntryID() {
			best = s
		}
	}
	if best == nil {
		m.done = true
		return zero, Done
	}

	item := best.buf[0]
	if item.EntryID() <= m.stopID {
		m.done = true
		return zero, Done
	}

	best.buf = best.buf[1:]
	// Refill eagerly so the next selection compares a real head, not
	// an empty buffer: the lookahead-of-one invariant.
	if len(best.buf) == 0 {
		if err := m.refill(ctx, best); err != nil {
			return zero, err
		}
	}

	if m.remaining > 0 {
		m.remaining--
	}
	return item, nil
}

// Collect drains the remaining merged sequence into a slice.
func (m *Merged[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for {
		item, err := m.Next(ctx)
		if errors.Is(err, Done) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}
