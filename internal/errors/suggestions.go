// Package errors provides user-facing errors that carry suggestions.
package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmurray2011/lrucache/pkg/lru"
)

// SuggestiveError is an error that includes suggestions for fixing the problem.
type SuggestiveError struct {
	Message     string
	Suggestions []string
	HelpCommand string

	// Err is the underlying cause, if any.
	Err error
}

func (e *SuggestiveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, s := range e.Suggestions {
			b.WriteString("  ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	if e.HelpCommand != "" {
		b.WriteString("\nRun '")
		b.WriteString(e.HelpCommand)
		b.WriteString("' for more information.")
	}

	return b.String()
}

func (e *SuggestiveError) Unwrap() error {
	return e.Err
}

// InvalidCapacityError creates an error for a non-positive cache capacity.
func InvalidCapacityError(capacity int) error {
	return &SuggestiveError{
		Message: fmt.Sprintf("invalid capacity %d: must be a positive integer", capacity),
		Suggestions: []string{
			fmt.Sprintf("--capacity %d  (the default)", lru.DefaultCapacity),
			"capacity: 100 in ~/.lrucache.yaml",
			"LRUCACHE_CAPACITY=100",
		},
		Err: lru.ErrInvalidConfiguration,
	}
}

// UnknownOperationError creates an error for an unrecognised script operation.
// Known operations within a small edit distance are offered as suggestions.
func UnknownOperationError(op string, known []string) error {
	return &SuggestiveError{
		Message:     fmt.Sprintf("unknown operation %q", op),
		Suggestions: findSimilar(op, known, 2),
		HelpCommand: "lrucache replay --help",
	}
}

// MissingArgumentError creates an error for an operation used with the wrong arguments.
func MissingArgumentError(op, usage string) error {
	return &SuggestiveError{
		Message:     fmt.Sprintf("%s: missing argument", op),
		Suggestions: []string{usage},
	}
}

// UnknownFormatError creates an error for an unsupported output format.
func UnknownFormatError(format string, known []string) error {
	similar := findSimilar(format, known, 2)
	if len(similar) == 0 {
		similar = known
	}
	return &SuggestiveError{
		Message:     fmt.Sprintf("unknown output format %q", format),
		Suggestions: similar,
	}
}

// findSimilar returns up to three candidates within maxDistance of target,
// closest first. Comparison is case-insensitive.
func findSimilar(target string, candidates []string, maxDistance int) []string {
	type match struct {
		value    string
		distance int
	}

	var matches []match
	targetLower := strings.ToLower(target)

	for _, c := range candidates {
		d := levenshtein(targetLower, strings.ToLower(c))
		if d <= maxDistance {
			matches = append(matches, match{value: c, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	var result []string
	for i := 0; i < len(matches) && i < 3; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// levenshtein calculates the edit distance between two strings using two rows.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
