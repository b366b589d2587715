// Package paginator implements lazy, pull-based pagination over the
// remote's descending-id feeds.
//
// The remote paginates every feed by an exclusive upper-bound cursor:
// a request with end_id=N returns the next page of items whose ids are
// strictly below N, newest first. Ids are strictly decreasing within a
// category as timestamps decrease, which makes every category feed
// totally ordered.
//
// Three paginator shapes are provided:
//
//   - Cursor: a single category feed. Fetches one page at a time on
//     demand and stops at an item limit, an exclusive stop id, or
//     remote exhaustion (a short or empty page).
//   - Merged: a k-way merge of several category feeds into one
//     globally time-ordered sequence. Holds at most one page per
//     category (lookahead of one) and never materializes history.
//   - Paged: a page-numbered feed without cursors, used for the
//     daily-reward claim history.
//
// All paginators share the same contract: Next returns the next item
// or the Done sentinel, Collect drains the rest of the sequence.
// A paginator is forward-only and finite; restarting means building a
// new one. Abandoning a paginator early leaks nothing: no goroutines
// are spawned and at most one page per category is buffered.
package paginator
