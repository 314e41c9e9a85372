package upay

// OrderDirection sorts list results.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// ListParams are the pagination controls shared by every list operation.
// Page and Limit are optional; when set they must be greater than zero.
type ListParams struct {
	Page           *int           `json:"page,omitempty" validate:"omitempty,gt=0"`
	Limit          *int           `json:"limit,omitempty" validate:"omitempty,gt=0"`
	Cursor         string         `json:"cursor,omitempty"`
	OrderBy        string         `json:"orderBy,omitempty"`
	OrderDirection OrderDirection `json:"orderDirection,omitempty" validate:"omitempty,oneof=asc desc"`
}

func (p *ListParams) query() Query {
	if p == nil {
		return Query{}
	}
	return Query{
		"page":           p.Page,
		"limit":          p.Limit,
		"cursor":         optional(p.Cursor),
		"orderBy":        optional(p.OrderBy),
		"orderDirection": optional(string(p.OrderDirection)),
	}
}

// optional maps the empty string to nil so it is left out of the query.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Int returns a pointer to n, for the optional numeric fields of params.
func Int(n int) *int { return &n }

// Int64 returns a pointer to n.
func Int64(n int64) *int64 { return &n }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

type Pagination struct {
	Total       int    `json:"total"`
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	TotalPages  int    `json:"totalPages,omitempty"`
	HasNext     bool   `json:"hasNext,omitempty"`
	HasPrevious bool   `json:"hasPrev,omitempty"`
	NextCursor  string `json:"nextCursor,omitempty"`
}

func defaultPagination(total int) Pagination {
	return Pagination{Total: total, Page: 1, Limit: 10}
}

type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message,omitempty"`
}

func (p *PaginatedResponse[T]) HasMore() bool {
	if p.Pagination.HasNext || p.Pagination.NextCursor != "" {
		return true
	}
	return p.Pagination.Limit > 0 && p.Pagination.Page*p.Pagination.Limit < p.Pagination.Total
}
