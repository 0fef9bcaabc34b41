package storage

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldContains reports whether substr occurs in s under Unicode case
// folding. An empty substr matches everything.
func foldContains(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(fold(s), fold(substr))
}

// fold case-folds a string. A cases.Caser is stateful, so a fresh one is
// created per call rather than shared.
func fold(s string) string {
	return cases.Fold().String(s)
}
