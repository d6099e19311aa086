package filtering

import "strings"

// StatusAll is the status filter value that bypasses status matching.
const StatusAll = "all"

// MatchesQuery reports whether any of the candidate field values contains
// query, case-insensitively. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether status passes the filter. An empty filter or
// the special value "all" bypasses the check; otherwise the match is exact.
func MatchesStatus(filter, status string) bool {
	if filter == "" || filter == StatusAll {
		return true
	}
	return filter == status
}

// Apply filters items by the conjunction of the query and status predicates,
// preserving input order. fields extracts the searchable values of one item
// and status extracts its status value.
func Apply[T any](items []T, query, statusFilter string, fields func(T) []string, status func(T) string) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if !MatchesQuery(query, fields(item)...) {
			continue
		}
		if !MatchesStatus(statusFilter, status(item)) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
