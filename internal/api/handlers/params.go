package handlers

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page and limit query parameters, falling back to
// page 1 and the given default limit when absent or malformed. Range
// validation happens in the services.
func ParsePagination(r *http.Request, defaultLimit int) (int, int) {
	page := 1
	limit := defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	return page, limit
}
