package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Table writes column-aligned output using text/tabwriter with consistent
// formatting across commands. Headers are bold when output is a TTY.
type Table struct {
	tw    *tabwriter.Writer
	color bool
}

// NewTable creates a Table that writes to w. If headers are provided, they
// are written as a bold header row (bold only when w is a TTY).
func NewTable(w io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	t := &Table{tw: tw, color: isTTY(w)}

	if len(headers) > 0 {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = t.Bold(h)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return t
}

// Row writes a data row with tab-separated values.
func (t *Table) Row(vals ...string) {
	fmt.Fprintln(t.tw, strings.Join(vals, "\t"))
}

// Flush flushes the underlying tabwriter.
func (t *Table) Flush() error {
	return t.tw.Flush()
}

// Bold wraps text in bold if color is enabled for this table.
func (t *Table) Bold(s string) string {
	if !t.color {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}
