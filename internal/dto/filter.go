package dto

// StatusFilterAll bypasses status filtering in list requests.
const StatusFilterAll = "all"

// ListFilter narrows a listing by case-insensitive substring search and an
// exact status match. An empty search matches everything; a status of "all"
// (or empty) bypasses the status check. Both predicates are ANDed.
type ListFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// IsZero reports whether the filter leaves the listing unchanged.
func (f ListFilter) IsZero() bool {
	return f.Search == "" && (f.Status == "" || f.Status == StatusFilterAll)
}
