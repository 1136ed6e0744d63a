package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderTable writes a bordered table to w.
func renderTable(w io.Writer, header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}
