package domain

// PaginationParams carries page/limit values from the HTTP layer down to the
// trip listing. Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of trips to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 to keep responses bounded.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based offset of the first trip on this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageOf slices trips down to the requested page. The store holds the whole
// collection in memory, so pagination is a plain slice operation here rather
// than a query clause. Out-of-range pages yield an empty slice, never nil.
func PageOf(trips []Trip, p PaginationParams) []Trip {
	lo := p.Offset()
	if lo > len(trips) {
		lo = len(trips)
	}
	hi := lo + p.Limit
	if hi > len(trips) {
		hi = len(trips)
	}
	out := make([]Trip, hi-lo)
	copy(out, trips[lo:hi])
	return out
}
