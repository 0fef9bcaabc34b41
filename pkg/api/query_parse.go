package api

import "strconv"

// parsePositiveInt returns a parsed int only when the value is a valid
// positive integer. Missing, non-numeric and non-positive values report
// false so the caller falls back to its default.
func parsePositiveInt(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
