package output

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jmurray2011/lrucache/internal/replay"
	"github.com/jmurray2011/lrucache/internal/script"
)

// FormatResults outputs replay results in the configured format.
func (f *Formatter) FormatResults(results []replay.Result) error {
	switch f.format {
	case FormatJSON:
		return f.formatResultsJSON(results)
	case FormatCSV:
		return f.formatResultsCSV(results)
	default:
		f.formatResultsText(results)
		return nil
	}
}

// formatResultsText renders a table of operations followed by the final
// recency order.
func (f *Formatter) formatResultsText(results []replay.Result) {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			strconv.Itoa(res.Line),
			string(res.Op),
			res.Key,
			res.Value,
			f.outcome(res),
			strconv.Itoa(res.Len),
		})
	}
	f.renderer.Table([]string{"LINE", "OP", "KEY", "VALUE", "RESULT", "LEN"}, rows)

	var keys []string
	if len(results) > 0 {
		keys = results[len(results)-1].Keys
	}
	f.renderer.Section("Recency order")
	f.renderer.RecencyList(keys)
}

func (f *Formatter) outcome(res replay.Result) string {
	switch res.Op {
	case script.KindGet:
		return f.renderer.Outcome(res.Hit, !res.Hit, "")
	case script.KindPut:
		if res.Hit {
			return "update"
		}
		return f.renderer.Outcome(false, false, res.Evicted)
	case script.KindKeys:
		return strings.Join(res.Keys, " ")
	default:
		return ""
	}
}

// formatResultsJSON outputs results as an indented JSON array.
func (f *Formatter) formatResultsJSON(results []replay.Result) error {
	if results == nil {
		results = []replay.Result{}
	}
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// formatResultsCSV outputs one row per result. Keys are space separated.
func (f *Formatter) formatResultsCSV(results []replay.Result) error {
	writer := csv.NewWriter(f.writer)

	if err := writer.Write([]string{"line", "op", "key", "value", "hit", "evicted", "len", "keys"}); err != nil {
		return err
	}

	for _, res := range results {
		record := []string{
			strconv.Itoa(res.Line),
			string(res.Op),
			res.Key,
			res.Value,
			strconv.FormatBool(res.Hit),
			res.Evicted,
			strconv.Itoa(res.Len),
			strings.Join(res.Keys, " "),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
