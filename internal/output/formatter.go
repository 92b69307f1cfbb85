package output

import (
	"io"

	clerrors "github.com/jmurray2011/lrucache/internal/errors"
	"github.com/jmurray2011/lrucache/internal/ui"
)

// Format specifies the output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatCSV}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if Format(s) == f {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", clerrors.UnknownFormatError(s, names)
}

// Formatter handles output formatting for different formats.
type Formatter struct {
	format   Format
	writer   io.Writer
	renderer *ui.Renderer
}

// NewFormatter creates a new formatter with the specified format.
// Text output is styled unless noColor is set.
func NewFormatter(format Format, writer io.Writer, noColor bool) *Formatter {
	return &Formatter{
		format:   format,
		writer:   writer,
		renderer: ui.NewRendererWithOptions(ui.WithOutput(writer), ui.WithNoColor(noColor)),
	}
}
