package domain

// Update sort keys accepted by feed queries.
const (
	SortByCreatedAt = "created_at"
	SortByScore     = "score"
)

// Feed page size bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxFeedPage     = 10000
)

// UpdateFilter contains filtering/pagination parameters for feed reads.
type UpdateFilter struct {
	Group  *string // nil = every group
	SortBy string
	Skip   int
	Limit  int
}

// Normalized returns a copy with an allowed sort key, a non-negative skip and
// a limit in [1, MaxPageSize].
func (f UpdateFilter) Normalized() UpdateFilter {
	if f.SortBy != SortByScore {
		f.SortBy = SortByCreatedAt
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultPageSize
	case f.Limit > MaxPageSize:
		f.Limit = MaxPageSize
	}
	if f.Group != nil && *f.Group == "" {
		f.Group = nil
	}
	return f
}
