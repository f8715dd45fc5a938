package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest is a normalized listing window request. Build one with
// NewPageRequest so the clamping rules are applied exactly once.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page and limit to their minimums. Callers pass
// the defaults themselves when a query value is absent or non-numeric.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset is the number of records skipped before the window starts.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata returned alongside every listing window.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Paginate computes the metadata for one window over total records.
// A zero total yields zero pages and hasMore=false regardless of the
// requested page; a past-the-end page is not an error.
func Paginate(req PageRequest, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return Pagination{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		HasMore:    req.Page < totalPages,
	}
}

// ProjectPage is one listing window plus its metadata.
type ProjectPage struct {
	Projects   []Project  `json:"projects"`
	Pagination Pagination `json:"pagination"`
}
