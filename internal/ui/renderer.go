// Package ui renders lrucache terminal output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer handles all terminal output with consistent styling.
type Renderer struct {
	out     io.Writer
	err     io.Writer
	noColor bool
	quiet   bool
}

// NewRenderer creates a new Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// Option is a functional option for configuring the Renderer.
type Option func(*Renderer)

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		r.out = w
	}
}

// WithError sets the error writer.
func WithError(w io.Writer) Option {
	return func(r *Renderer) {
		r.err = w
	}
}

// WithNoColor disables color output.
func WithNoColor(noColor bool) Option {
	return func(r *Renderer) {
		r.noColor = noColor
	}
}

// WithQuiet enables quiet mode (suppresses status messages).
func WithQuiet(quiet bool) Option {
	return func(r *Renderer) {
		r.quiet = quiet
	}
}

// NewRendererWithOptions creates a new Renderer with the given options.
func NewRendererWithOptions(opts ...Option) *Renderer {
	r := NewRenderer()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// render applies styling if color is enabled.
func (r *Renderer) render(style lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return style.Render(text)
}

// --- Status and Messages ---

// Status prints a status message (suppressed in quiet mode).
func (r *Renderer) Status(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.err, r.render(StatusStyle, fmt.Sprintf(format, args...)))
}

// Info prints an informational message.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.out, r.render(SuccessStyle, fmt.Sprintf(format, args...)))
}

// Warning prints a warning message.
func (r *Renderer) Warning(format string, args ...any) {
	fmt.Fprintln(r.err, r.render(WarningStyle, "Warning: "+fmt.Sprintf(format, args...)))
}

// Error prints an error message.
func (r *Renderer) Error(format string, args ...any) {
	fmt.Fprintln(r.err, r.render(ErrorStyle, "Error: "+fmt.Sprintf(format, args...)))
}

// --- Formatted Output ---

// KeyValue prints a key-value pair.
func (r *Renderer) KeyValue(key, value string) {
	fmt.Fprintf(r.out, "%s %s\n", r.render(LabelStyle, key+":"), value)
}

// Section prints a section title.
func (r *Renderer) Section(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.render(SectionTitleStyle, title))
}

// Divider prints a horizontal divider.
func (r *Renderer) Divider() {
	fmt.Fprintln(r.out, r.render(MutedStyle, strings.Repeat("─", 40)))
}

// Newline prints a blank line.
func (r *Renderer) Newline() {
	fmt.Fprintln(r.out)
}

// --- Cache Rendering ---

// Outcome returns the styled label for an operation outcome:
// "hit", "miss", "evict <key>", or "" when there is nothing to report.
func (r *Renderer) Outcome(hit, miss bool, evicted string) string {
	switch {
	case evicted != "":
		return r.render(EvictStyle, "evict "+evicted)
	case hit:
		return r.render(HitStyle, "hit")
	case miss:
		return r.render(MissStyle, "miss")
	default:
		return ""
	}
}

// RecencyList renders cached keys from least to most recently used.
// With color enabled each key is boxed and joined horizontally; without
// color the list is a single plain line.
func (r *Renderer) RecencyList(keys []string) {
	if len(keys) == 0 {
		fmt.Fprintln(r.out, r.render(MutedStyle, "(empty)"))
		return
	}

	if r.noColor {
		fmt.Fprintf(r.out, "LRU [%s] MRU\n", strings.Join(keys, " "))
		return
	}

	blocks := make([]string, 0, len(keys)+2)
	blocks = append(blocks, EndLabelStyle.Render("LRU "))
	for i, k := range keys {
		style := KeyStyle
		if i == len(keys)-1 {
			style = NewestKeyStyle
		}
		blocks = append(blocks, style.Render(k))
	}
	blocks = append(blocks, EndLabelStyle.Render(" MRU"))
	fmt.Fprintln(r.out, lipgloss.JoinHorizontal(lipgloss.Center, blocks...))
}

// --- Table Rendering ---

// Table renders a simple table.
func (r *Renderer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	// Widths are measured on rendered text so styled cells still align.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	headerParts := make([]string, len(headers))
	for i, h := range headers {
		headerParts[i] = r.render(LabelStyle, pad(h, widths[i]))
	}
	fmt.Fprintln(r.out, strings.TrimRight(strings.Join(headerParts, "  "), " "))

	sepParts := make([]string, len(headers))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(r.out, r.render(MutedStyle, strings.Join(sepParts, "  ")))

	for _, row := range rows {
		rowParts := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowParts[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(r.out, strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
