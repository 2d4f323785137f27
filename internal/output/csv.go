package output

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders t as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
