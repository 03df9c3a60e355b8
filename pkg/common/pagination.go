package common

import "fmt"

// Pagination requests one page of a listing. A PageLimit of 0 asks the serving
// component for its default page size.
type Pagination struct {
	PageNumber int32
	PageLimit  int32
}

// Page is a Pagination with defaults applied.
type Page struct {
	Number int32
	Limit  int32
	Offset int64
}

func (p Pagination) IsZero() bool { return p.PageNumber == 0 && p.PageLimit == 0 }

// Validate rejects page numbers below 1, negative limits and, when maxLimit > 0,
// limits above maxLimit.
func (p Pagination) Validate(maxLimit int32) error {
	if p.PageNumber < 1 {
		return fmt.Errorf("%w: page_number must be >= 1, got %d", ErrInvalidPagination, p.PageNumber)
	}
	if p.PageLimit < 0 {
		return fmt.Errorf("%w: page_limit must be >= 0, got %d", ErrInvalidPagination, p.PageLimit)
	}
	if maxLimit > 0 && p.PageLimit > maxLimit {
		return fmt.Errorf("%w: page_limit must be <= %d, got %d", ErrInvalidPagination, maxLimit, p.PageLimit)
	}
	return nil
}

// Resolve applies defaults. A zero PageNumber is the first page, whether or not a
// limit is set; a zero limit becomes defaultLimit.
func (p Pagination) Resolve(defaultLimit, maxLimit int32) (Page, error) {
	if p.PageNumber == 0 {
		p.PageNumber = 1
	}
	if err := p.Validate(maxLimit); err != nil {
		return Page{}, err
	}

	limit := p.PageLimit
	if limit == 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Page{
		Number: p.PageNumber,
		Limit:  limit,
		Offset: int64(p.PageNumber-1) * int64(limit),
	}, nil
}
