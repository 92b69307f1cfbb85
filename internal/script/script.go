// Package script parses line-oriented cache operation scripts.
//
// Each non-blank line holds one operation. Lines starting with '#' are
// comments. Operation names are case-insensitive:
//
//	put <key> <value...>   store value (the rest of the line) under key
//	get <key>              look up key
//	len                    report the number of cached keys
//	keys                   report the recency order
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	clerrors "github.com/jmurray2011/lrucache/internal/errors"
)

// Kind identifies an operation.
type Kind string

const (
	KindPut  Kind = "put"
	KindGet  Kind = "get"
	KindLen  Kind = "len"
	KindKeys Kind = "keys"
)

// Kinds lists every supported operation in display order.
var Kinds = []Kind{KindPut, KindGet, KindLen, KindKeys}

var usage = map[Kind]string{
	KindPut:  "put <key> <value>",
	KindGet:  "get <key>",
	KindLen:  "len",
	KindKeys: "keys",
}

// Op is a single parsed operation.
type Op struct {
	Line  int // 1-based line number in the script
	Kind  Kind
	Key   string
	Value string
}

// String renders the op back into script syntax.
func (o Op) String() string {
	switch o.Kind {
	case KindPut:
		return fmt.Sprintf("put %s %s", o.Key, o.Value)
	case KindGet:
		return "get " + o.Key
	default:
		return string(o.Kind)
	}
}

// LineError reports the script line that failed to parse.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads every operation from r. It stops at the first malformed line.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		op, ok, err := ParseLine(scanner.Text(), lineNum)
		if err != nil {
			return nil, &LineError{Line: lineNum, Err: err}
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return ops, nil
}

// ParseLine parses a single line. It returns ok=false for blank and comment lines.
func ParseLine(line string, lineNum int) (Op, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Op{}, false, nil
	}

	name, rest := cutSpace(line)
	kind := Kind(strings.ToLower(name))
	op := Op{Line: lineNum, Kind: kind}

	switch kind {
	case KindPut:
		key, value := cutSpace(rest)
		if key == "" || value == "" {
			return Op{}, false, clerrors.MissingArgumentError(name, usage[kind])
		}
		op.Key, op.Value = key, value
	case KindGet:
		if rest == "" {
			return Op{}, false, clerrors.MissingArgumentError(name, usage[kind])
		}
		if strings.ContainsAny(rest, " \t") {
			return Op{}, false, fmt.Errorf("get takes a single key, got %q", rest)
		}
		op.Key = rest
	case KindLen, KindKeys:
		if rest != "" {
			return Op{}, false, fmt.Errorf("%s takes no arguments", kind)
		}
	default:
		return Op{}, false, clerrors.UnknownOperationError(name, kindNames())
	}

	return op, true, nil
}

// cutSpace splits s at its first run of whitespace.
func cutSpace(s string) (head, tail string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func kindNames() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return names
}
