package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmurray2011/lrucache/internal/replay"
	"github.com/jmurray2011/lrucache/internal/script"
)

func sampleResults() []replay.Result {
	return []replay.Result{
		{Line: 1, Op: script.KindPut, Key: "1", Value: "a", Len: 1, Keys: []string{"1"}},
		{Line: 2, Op: script.KindPut, Key: "2", Value: "b", Len: 1, Evicted: "1", Keys: []string{"2"}},
		{Line: 3, Op: script.KindGet, Key: "1", Len: 1, Keys: []string{"2"}},
		{Line: 4, Op: script.KindGet, Key: "2", Value: "b", Hit: true, Len: 1, Keys: []string{"2"}},
		{Line: 5, Op: script.KindPut, Key: "2", Value: "c", Hit: true, Len: 1, Keys: []string{"2"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatResultsText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf, true)

	if err := f.FormatResults(sampleResults()); err != nil {
		t.Fatalf("FormatResults() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"LINE", "RESULT",
		"evict 1",
		"miss",
		"hit",
		"update",
		"Recency order",
		"LRU [2] MRU",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestFormatResultsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf, true)

	if err := f.FormatResults(nil); err != nil {
		t.Fatalf("FormatResults() error = %v", err)
	}
	if !strings.Contains(buf.String(), "(empty)") {
		t.Errorf("expected empty recency list, got:\n%s", buf.String())
	}
}

func TestFormatResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf, true)

	if err := f.FormatResults(sampleResults()); err != nil {
		t.Fatalf("FormatResults() error = %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 5 {
		t.Fatalf("expected 5 results, got %d", len(decoded))
	}
	if decoded[1]["evicted"] != "1" {
		t.Errorf("result[1].evicted = %v, want 1", decoded[1]["evicted"])
	}
	if _, ok := decoded[0]["evicted"]; ok {
		t.Error("evicted should be omitted when nothing was evicted")
	}
	if decoded[3]["hit"] != true {
		t.Errorf("result[3].hit = %v, want true", decoded[3]["hit"])
	}
}

func TestFormatResultsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf, true)

	if err := f.FormatResults(nil); err != nil {
		t.Fatalf("FormatResults() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %q", buf.String())
	}
}

func TestFormatResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf, true)

	if err := f.FormatResults(sampleResults()[:2]); err != nil {
		t.Fatalf("FormatResults() error = %v", err)
	}

	want := "line,op,key,value,hit,evicted,len,keys\n" +
		"1,put,1,a,false,,1,1\n" +
		"2,put,2,b,false,1,1,2\n"
	if buf.String() != want {
		t.Errorf("CSV output =\n%s\nwant\n%s", buf.String(), want)
	}
}
