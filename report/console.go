package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/treearray/bench"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleOptions control console output.
type ConsoleOptions struct {
	Metric    Metric
	Color     bool           // mark fastest and slowest cells
	Width     int            // maximum table width in en; 0 means unlimited
	Context   *uax11.Context // for measuring display width; nil means Latin
	Fastest   *color.Color   // nil means green
	Slowest   *color.Color   // nil means red
	Separator string         // between columns; empty means two spaces
}

// OptionsFromTerminal is a helper for creating console options.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and enables colors.
func OptionsFromTerminal() *ConsoleOptions {
	opts := &ConsoleOptions{Context: uax11.ContextFromEnvironment()}
	if term.IsTerminal(1) {
		opts.Color = true
		if w, _, err := term.GetSize(1); err == nil && w > 10 {
			opts.Width = w
		}
	}
	tracer().P("format", "console").Debugf("table width limited to %d en", opts.Width)
	return opts
}

var setupGraphemes sync.Once

// displayWidth measures a string in en, respecting East Asian wide characters.
// Graphemes starting with an ASCII character are one en wide. uax11 measures
// digits as emoji, as they carry the Emoji property.
func displayWidth(s string, ctx *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	width := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if g == "" {
			continue
		}
		if g[0] < utf8.RuneSelf {
			width++
			continue
		}
		width += uax11.StringWidth(grapheme.StringFromString(g), ctx)
	}
	return width
}

func pad(s string, width int, ctx *uax11.Context) string {
	if n := width - displayWidth(s, ctx); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Console writes results as an aligned table. If the table would be wider than
// opts.Width, results are listed one per line instead.
//
// opts may be nil.
func Console(w io.Writer, results []bench.Result, opts *ConsoleOptions) error {
	if opts == nil {
		opts = &ConsoleOptions{}
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	sep := opts.Separator
	if sep == "" {
		sep = "  "
	}
	fastest, slowest := opts.Fastest, opts.Slowest
	if fastest == nil {
		fastest = color.New(color.FgGreen)
	}
	if slowest == nil {
		slowest = color.New(color.FgRed, color.Bold)
	}
	if opts.Color {
		fastest.EnableColor()
		slowest.EnableColor()
	}
	t := makeTable(results)
	// column 0 holds the workload names
	texts := make([][]string, len(t.workloads)+1)
	texts[0] = append([]string{"workload (" + opts.Metric.String() + ")"}, t.impls...)
	for row, wl := range t.workloads {
		texts[row+1] = []string{wl}
		for _, r := range t.cells[row] {
			texts[row+1] = append(texts[row+1], cellText(r, opts.Metric))
		}
	}
	widths := make([]int, len(t.impls)+1)
	for _, line := range texts {
		for col, s := range line {
			widths[col] = max(widths[col], displayWidth(s, ctx))
		}
	}
	total := (len(widths) - 1) * displayWidth(sep, ctx)
	for _, cw := range widths {
		total += cw
	}
	if opts.Width > 0 && total > opts.Width {
		tracer().Infof("table width %d exceeds %d, listing results", total, opts.Width)
		return list(w, results, opts.Metric)
	}
	var b strings.Builder
	for i, line := range texts {
		f, s := -1, -1
		if i > 0 && opts.Color {
			f, s = t.extremes(i-1, opts.Metric)
		}
		for col, text := range line {
			if col > 0 {
				b.WriteString(sep)
			}
			cell := text
			if col < len(line)-1 {
				cell = pad(text, widths[col], ctx)
			}
			switch {
			case col == 0:
			case col-1 == f:
				cell = fastest.Sprint(cell)
			case col-1 == s:
				cell = slowest.Sprint(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
		if i == 0 {
			b.WriteString(strings.Repeat("─", total))
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// list writes one result per line.
func list(w io.Writer, results []bench.Result, m Metric) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s %s: %s %s (n=%d, p95 %s)\n",
			r.Workload, r.Impl, m, m.of(r.Stats), r.Stats.N, r.Stats.P95)
		if err != nil {
			return err
		}
	}
	return nil
}
