package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/termcolor"
	"github.com/phyten/lumaramp/internal/textutil"
)

type TableStyle struct {
	Color   bool
	Profile termcolor.Profile
	// Scheme picks the preferred swatch text color.
	Scheme termcolor.Scheme
}

const columnSep = "  "

// WriteTable renders t as aligned plain-text columns with upper-case headers.
func WriteTable(w io.Writer, t Table, style TableStyle) error {
	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = strings.ToUpper(h)
	}
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, headers)
	rows = append(rows, t.Rows...)
	widths := textutil.ColumnWidths(rows)

	for i, row := range rows {
		cells := row
		if style.Color {
			cells = paintRow(row, i == 0, t.SwatchColumn, style)
		}
		if _, err := fmt.Fprintln(w, textutil.AlignRow(cells, widths, t.Aligns, columnSep)); err != nil {
			return err
		}
	}
	return nil
}

func paintRow(row []string, header bool, swatch int, style TableStyle) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		switch {
		case header:
			out[i] = termcolor.Apply(termcolor.HeaderStyle(), cell, true)
		case i == swatch:
			rgb, err := colorutil.ParseHex(cell)
			if err != nil {
				out[i] = cell
				continue
			}
			out[i] = termcolor.Apply(termcolor.Swatch(rgb, style.Profile, style.Scheme), cell, true)
		default:
			out[i] = cell
		}
	}
	return out
}
