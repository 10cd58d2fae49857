// Package renderer turns the statistics of brokerage exports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	md "github.com/nao1215/markdown"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// cellEscaper protects table cells from free text exports.
var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

// table is a markdown table filled row by row.
type table struct {
	md.TableSet
}

// newTable starts a table. Alignment is given per column as 'l' or 'r'.
func newTable(align string, header ...string) *table {
	t := &table{md.TableSet{Header: header, Rows: [][]string{}}}
	for _, a := range align {
		if a == 'r' {
			t.Alignment = append(t.Alignment, md.AlignRight)
		} else {
			t.Alignment = append(t.Alignment, md.AlignLeft)
		}
	}
	return t
}

// row appends a row to the table.
func (t *table) row(cells ...string) {
	for i := range cells {
		cells[i] = cellEscaper.Replace(cells[i])
	}
	t.Rows = append(t.Rows, cells)
}

// print writes the table to w.
func (t *table) print(w io.Writer) {
	if err := md.NewMarkdown(w).Table(t.TableSet).Build(); err != nil {
		slog.Warn("cannot render table", "error", err)
	}
}

// optional returns the string form of v, or "-" when v is nil.
func optional[T fmt.Stringer](v *T) string {
	if v == nil {
		return "-"
	}
	return (*v).String()
}
