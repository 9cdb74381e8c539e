// Package pagination slices ordered key lists into fixed-size pages with
// stable navigation: out-of-range moves clamp silently instead of wrapping.
package pagination

// Pager tracks a current page over n items. The zero value is not usable;
// construct with New.
type Pager struct {
	total   int
	size    int
	current int
}

// New returns a pager over total items with the given page size, positioned
// on page 1. A size below 1 is coerced to 1.
func New(total, size int) *Pager {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	return &Pager{total: total, size: size, current: 1}
}

// TotalPages is ceil(total/size).
func (p *Pager) TotalPages() int {
	return (p.total + p.size - 1) / p.size
}

// Current returns the current page number, always >= 1.
func (p *Pager) Current() int {
	return p.current
}

// Size returns the page size.
func (p *Pager) Size() int {
	return p.size
}

// Bounds returns the half-open index range [start, end) of page i, clamped to
// the sequence. For any in-range page the slice is non-empty unless the
// sequence itself is empty.
func (p *Pager) Bounds(page int) (start, end int) {
	if page < 1 {
		page = 1
	}
	start = (page - 1) * p.size
	if start > p.total {
		start = p.total
	}
	end = start + p.size
	if end > p.total {
		end = p.total
	}
	return start, end
}

// GoTo moves to the given page if it is in range; out-of-range requests are
// ignored.
func (p *Pager) GoTo(page int) {
	if page >= 1 && page <= p.TotalPages() {
		p.current = page
	}
}

// Next advances one page, staying put at the last page.
func (p *Pager) Next() {
	if p.current < p.TotalPages() {
		p.current++
	}
}

// Prev steps back one page, staying put at page 1.
func (p *Pager) Prev() {
	if p.current > 1 {
		p.current--
	}
}

// SetSize changes the page size and resets the current page to 1.
func (p *Pager) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	p.size = size
	p.current = 1
}

// SetTotal updates the item count, clamping the current page back into range.
func (p *Pager) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	if tp := p.TotalPages(); tp > 0 && p.current > tp {
		p.current = tp
	}
	if p.current < 1 {
		p.current = 1
	}
}

// Page returns the current page's slice of keys. The key slice must have the
// same length the pager was constructed with.
func Page[T any](p *Pager, keys []T) []T {
	start, end := p.Bounds(p.current)
	if start >= len(keys) {
		return nil
	}
	if end > len(keys) {
		end = len(keys)
	}
	return keys[start:end]
}

// Slice is a one-shot helper: page i of keys with the given size, clamped.
func Slice[T any](keys []T, page, size int) []T {
	p := New(len(keys), size)
	p.GoTo(page)
	return Page(p, keys)
}

// TotalPages is a one-shot helper for ceil(n/size).
func TotalPages(n, size int) int {
	return New(n, size).TotalPages()
}
