package statfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ExpandGlobs expands stat file paths and glob patterns into a deduplicated
// list. Patterns that match nothing are kept as literal paths so the caller
// reports a file-not-found error for them.
//
// Results are ordered by name with numeric suffixes compared as numbers,
// so stat_9 sorts before stat_10.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return lessNatural(result[i], result[j])
	})

	return result, nil
}

// lessNatural orders paths by their non-numeric stem, then by a trailing
// integer when both have one.
func lessNatural(a, b string) bool {
	stemA, numA, okA := splitNumericSuffix(a)
	stemB, numB, okB := splitNumericSuffix(b)

	if okA && okB && stemA == stemB {
		if numA != numB {
			return numA < numB
		}
	}
	return a < b
}

func splitNumericSuffix(s string) (string, int, bool) {
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	digits := s[i+1:]
	if digits == "" {
		return s, 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return s, 0, false
	}
	return s[:i+1], n, true
}
