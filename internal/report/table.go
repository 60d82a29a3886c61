package report

import "isce_report/internal/record"

// Table is the ordered result collection, keyed uniquely by record id.
type Table struct {
	rows  []record.Record
	index map[string]int
}

func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add appends a record. A duplicate id overwrites the earlier row in place,
// keeping its original position, matching keyed-assignment semantics.
func (t *Table) Add(r record.Record) {
	if i, ok := t.index[r.ID]; ok {
		t.rows[i] = r
		return
	}
	t.index[r.ID] = len(t.rows)
	t.rows = append(t.rows, r)
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the records in insertion order.
func (t *Table) Rows() []record.Record {
	return append([]record.Record(nil), t.rows...)
}
