package paginator

import (
	"context"
	"errors"
	"time"
)

// Done is returned by Next when the sequence has no more items.
// Reaching the end of a feed is not an error.
var Done = errors.New("paginator: no more items")

// Entry is a single item of a paginated feed. Ids are assigned by the
// remote and are strictly decreasing within one category as timestamps
// decrease.
type Entry interface {
	EntryID() int64
	EntryTime() time.Time
}

// PageFunc fetches one page of a category feed. endID is the exclusive
// upper-bound cursor; 0 requests the newest page.
type PageFunc[T Entry] func(ctx context.Context, endID int64) ([]T, error)

// Options bound a paginator.
type Options struct {
	// Limit is the maximum number of items to produce. Zero or
	// negative means unbounded.
	Limit int

	// StopID is an exclusive lower cutoff: items with id <= StopID
	// are never produced and fetching stops once one is seen.
	StopID int64
}

// Cursor is a lazy single-category paginator. It owns its cursor
// state and fetches pages only when pulled from.
type Cursor[T Entry] struct {
	fetch    PageFunc[T]
	pageSize int

	cursor    int64
	remaining int // -1 when unbounded
	stopID    int64
	exhausted bool

	buf []T
}

// NewCursor creates a paginator over one category feed. pageSize must
// be the remote's fixed page size for the feed; it is how exhaustion
// is detected.
func NewCursor[T Entry](fetch PageFunc[T], pageSize int, opts Options) *Cursor[T] {
	remaining := opts.Limit
	if remaining <= 0 {
		remaining = -1
	}
	return &Cursor[T]{
		fetch:     fetch,
		pageSize:  pageSize,
		remaining: remaining,
		stopID:    opts.StopID,
	}
}

// Exhausted reports whether no further pages will be fetched.
// Buffered items may still be pending in Next.
func (p *Cursor[T]) Exhausted() bool {
	return p.exhausted || p.remaining == 0
}

// NextPage fetches and returns the next page of items, possibly empty.
// An empty page with Exhausted() true means the feed has ended.
func (p *Cursor[T]) NextPage(ctx context.Context) ([]T, error) {
	if p.Exhausted() {
		return nil, nil
	}

	prev := p.cursor
	page, err := p.fetch(ctx, p.cursor)
	if err != nil {
		return nil, err
	}

	if len(page) < p.pageSize {
		p.exhausted = true
	}

	items := make([]T, 0, len(page))
	for _, item := range page {
		id := item.EntryID()
		// The remote occasionally re-returns the boundary item of
		// the previous page; drop anything not strictly below the
		// previous cursor.
		if prev != 0 && id >= prev {
			continue
		}
		if id <= p.stopID {
			p.exhausted = true
			break
		}
		items = append(items, item)
	}

	if !p.exhausted && len(page) > 0 {
		p.cursor = page[len(page)-1].EntryID()
	}

	if p.remaining > 0 {
		if len(items) >= p.remaining {
			items = items[:p.remaining]
			p.remaining = 0
			p.exhausted = true
		} else {
			p.remaining -= len(items)
		}
	}

	return items, nil
}

// Next returns the next item of the feed, fetching a page when the
// buffer is empty. It returns Done once the feed ends.
func (p *Cursor[T]) Next(ctx context.Context) (T, error) {
	var zero T
	for len(p.buf) == 0 {
		if p.Exhausted() {
			return zero, Done
		}
		page, err := p.NextPage(ctx)
		if err != nil {
			return zero, err
		}
		p.buf = page
	}

	item := p.buf[0]
	p.buf = p.buf[1:]
	return item, nil
}

// Collect drains the remaining sequence into a slice.
func (p *Cursor[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for {
		item, err := p.Next(ctx)
		if errors.Is(err, Done) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}
