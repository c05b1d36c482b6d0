package tui

import (
	"fmt"
	"sort"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the table from the features of the current view.
func (m *Model) refreshAttrs() {
	cols, rows := m.buildAttributes()
	// an empty table panics on render; hide it instead
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current view"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for ci, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			if v := len(r[ci]) + 2; v > w {
				w = v
			}
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// clear rows first so the column change never sees mismatched rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns id and name columns followed by the union of
// property keys, sorted.
func (m *Model) buildAttributes() ([]string, [][]string) {
	features := m.view.Features()
	seen := map[string]bool{}
	var keys []string
	for _, f := range features {
		for k := range f.Properties {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	cols := append([]string{"id", "name"}, keys...)
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		vals := make([]string, 0, len(cols))
		vals = append(vals, f.ID, m.view.Name(f))
		for _, k := range keys {
			vals = append(vals, f.Properties[k])
		}
		rows = append(rows, vals)
	}
	return cols, rows
}
