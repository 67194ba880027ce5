package repository

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is page-number based; it is normalized to limit/offset at the
// query boundary.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
