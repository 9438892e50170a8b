package main

import (
	"net/http"
	"strconv"
)

// parseLimit reads an integer query parameter, falling back when absent or
// out of range.
func parseLimit(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
