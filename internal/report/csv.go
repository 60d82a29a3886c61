package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"isce_report/internal/record"
)

// OutputWriteError wraps a failure to persist the report.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e OutputWriteError) Unwrap() error {
	return e.Err
}

// WriteCSV persists the table to path with a header row, one row per record,
// id leading. An empty table still gets the header.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return OutputWriteError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	if err := w.Write(record.Columns()); err != nil {
		f.Close()
		return OutputWriteError{Path: path, Err: err}
	}
	for _, r := range t.rows {
		if err := w.Write(r.Row()); err != nil {
			f.Close()
			return OutputWriteError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return OutputWriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return OutputWriteError{Path: path, Err: err}
	}
	return nil
}
