package util

import "strconv"

const DefaultPerPage = 5

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Clamp normalizes pagination parameters: non-positive values fall back to the
// first page and the default window size.
func Clamp(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}
