package databases

import "go.mongodb.org/mongo-driver/mongo/options"

// Paginate builds skip/limit find options for page-numbered listings
type Paginate struct {
	limit int64
	page  int64
}

// NewPaginate creates a Paginate for the given page size and 1-based page
func NewPaginate(limit, page int) *Paginate {
	return &Paginate{
		limit: int64(limit),
		page:  int64(page),
	}
}

// GetPaginatedOpts returns the find options for the page
func (p *Paginate) GetPaginatedOpts() *options.FindOptions {
	l := p.limit
	skip := p.page*p.limit - p.limit
	fOpt := options.FindOptions{Limit: &l, Skip: &skip}

	return &fOpt
}
