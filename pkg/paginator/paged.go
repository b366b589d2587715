package paginator

import (
	"context"
	"errors"
)

// PagedFunc fetches one page of a page-numbered feed. Pages start
// at 1.
type PagedFunc[T any] func(ctx context.Context, page int) ([]T, error)

// Paged is a lazy paginator over a page-numbered feed without
// cursors. The feed ends at the first short or empty page.
type Paged[T any] struct {
	fetch    PagedFunc[T]
	pageSize int

	page      int
	remaining int // -1 when unbounded
	exhausted bool

	buf []T
}

// NewPaged creates a paginator over a page-numbered feed. pageSize is
// the remote's fixed page size; limit <= 0 means unbounded.
func NewPaged[T any](fetch PagedFunc[T], pageSize int, limit int) *Paged[T] {
	if limit <= 0 {
		limit = -1
	}
	return &Paged[T]{
		fetch:     fetch,
		pageSize:  pageSize,
		page:      1,
		remaining: limit,
	}
}

// Exhausted reports whether no further pages will be fetched.
func (p *Paged[T]) Exhausted() bool {
	return p.exhausted || p.remaining == 0
}

// NextPage fetches and returns the next page of items, possibly empty.
func (p *Paged[T]) NextPage(ctx context.Context) ([]T, error) {
	if p.Exhausted() {
		return nil, nil
	}

	items, err := p.fetch(ctx, p.page)
	if err != nil {
		return nil, err
	}
	p.page++

	if len(items) < p.pageSize {
		p.exhausted = true
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

// Next returns the next item of the feed or Done at the end.
func (p *Paged[T]) Next(ctx context.Context) (T, error) {
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
func (p *Paged[T]) Collect(ctx context.Context) ([]T, error) {
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
