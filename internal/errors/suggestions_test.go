package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/jmurray2011/lrucache/pkg/lru"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"get", "get", 0},
		{"get", "gte", 2},
		{"put", "pt", 1},
		{"keys", "key", 1},
		{"kitten", "sitting", 3},
	}

	for _, tc := range tests {
		got := levenshtein(tc.a, tc.b)
		if got != tc.expected {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"put", "get", "len", "keys"}

	tests := []struct {
		target      string
		maxDistance int
		want        []string
	}{
		{"pu", 1, []string{"put"}},
		{"GET", 0, []string{"get"}},
		{"key", 1, []string{"keys"}},
		{"evict", 1, nil},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			got := findSimilar(tc.target, candidates, tc.maxDistance)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("findSimilar(%q, %d) = %v, want %v", tc.target, tc.maxDistance, got, tc.want)
			}
		})
	}
}

func TestFindSimilarLimitsToThree(t *testing.T) {
	got := findSimilar("a", []string{"a", "b", "c", "d", "e"}, 1)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %v", got)
	}
	if got[0] != "a" {
		t.Errorf("closest match should come first, got %v", got)
	}
}

func TestSuggestiveErrorFormat(t *testing.T) {
	err := &SuggestiveError{
		Message:     "something failed",
		Suggestions: []string{"try this", "or that"},
		HelpCommand: "lrucache --help",
	}

	errStr := err.Error()
	if !strings.HasPrefix(errStr, "something failed") {
		t.Errorf("error should start with message: %s", errStr)
	}
	if !strings.Contains(errStr, "Did you mean one of these?") {
		t.Errorf("error should include suggestion header: %s", errStr)
	}
	if !strings.Contains(errStr, "  try this\n") {
		t.Errorf("error should include indented suggestion: %s", errStr)
	}
	if !strings.Contains(errStr, "Run 'lrucache --help'") {
		t.Errorf("error should include help command: %s", errStr)
	}
}

func TestInvalidCapacityError(t *testing.T) {
	err := InvalidCapacityError(-1)

	if !stderrors.Is(err, lru.ErrInvalidConfiguration) {
		t.Error("error should wrap lru.ErrInvalidConfiguration")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "-1") {
		t.Errorf("error should contain the bad capacity: %s", errStr)
	}
	if !strings.Contains(errStr, "--capacity 100") {
		t.Errorf("error should suggest the default capacity: %s", errStr)
	}
}

func TestUnknownOperationError(t *testing.T) {
	err := UnknownOperationError("gett", []string{"put", "get", "len", "keys"})

	errStr := err.Error()
	if !strings.Contains(errStr, `"gett"`) {
		t.Errorf("error should contain the bad operation: %s", errStr)
	}
	if !strings.Contains(errStr, "  get\n") {
		t.Errorf("error should suggest get: %s", errStr)
	}
	if !strings.Contains(errStr, "lrucache replay --help") {
		t.Errorf("error should suggest help command: %s", errStr)
	}
}

func TestMissingArgumentError(t *testing.T) {
	err := MissingArgumentError("put", "put <key> <value>")

	errStr := err.Error()
	if !strings.HasPrefix(errStr, "put: missing argument") {
		t.Errorf("unexpected message: %s", errStr)
	}
	if !strings.Contains(errStr, "put <key> <value>") {
		t.Errorf("error should include usage: %s", errStr)
	}
}

func TestUnknownFormatError(t *testing.T) {
	known := []string{"text", "json", "csv"}

	errStr := UnknownFormatError("jsn", known).Error()
	if !strings.Contains(errStr, "  json\n") {
		t.Errorf("error should suggest json: %s", errStr)
	}

	errStr = UnknownFormatError("yaml", known).Error()
	for _, f := range known {
		if !strings.Contains(errStr, "  "+f+"\n") {
			t.Errorf("error should list %s when nothing is close: %s", f, errStr)
		}
	}
}
