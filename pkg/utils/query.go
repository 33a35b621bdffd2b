package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page/limit query params; zero means "not supplied"
// and is normalized downstream.
func ParsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}
