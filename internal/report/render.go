package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"isce_report/internal/record"
)

// Render writes a fixed-width human-readable view of the table.
func (t *Table) Render(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(record.Columns(), "\t"))
	for _, r := range t.rows {
		fmt.Fprintln(w, strings.Join(r.Row(), "\t"))
	}
	w.Flush()
}
