package output

import (
	"strconv"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/ramp"
	"github.com/phyten/lumaramp/internal/solver"
	"github.com/phyten/lumaramp/internal/textutil"
)

// WCAG 2.x thresholds.
const (
	ratioAA      = 4.5
	ratioAALarge = 3.0
	ratioAAA     = 7.0
)

type LuminanceRow struct {
	Color     string  `json:"color" yaml:"color" toml:"color"`
	Hex       string  `json:"hex" yaml:"hex" toml:"hex"`
	Luminance float64 `json:"luminance" yaml:"luminance" toml:"luminance"`
}

func NewLuminanceRow(color string) (LuminanceRow, error) {
	rgb, err := colorutil.ParseColor(color)
	if err != nil {
		return LuminanceRow{}, err
	}
	return LuminanceRow{Color: color, Hex: rgb.Hex(), Luminance: colorutil.LuminanceRGB(rgb)}, nil
}

type ContrastRow struct {
	A       string  `json:"a" yaml:"a" toml:"a"`
	B       string  `json:"b" yaml:"b" toml:"b"`
	Ratio   float64 `json:"ratio" yaml:"ratio" toml:"ratio"`
	AA      bool    `json:"aa" yaml:"aa" toml:"aa"`
	AALarge bool    `json:"aa_large" yaml:"aa_large" toml:"aa_large"`
	AAA     bool    `json:"aaa" yaml:"aaa" toml:"aaa"`
}

func NewContrastRow(a, b string) (ContrastRow, error) {
	ca, err := colorutil.ParseColor(a)
	if err != nil {
		return ContrastRow{}, err
	}
	cb, err := colorutil.ParseColor(b)
	if err != nil {
		return ContrastRow{}, err
	}
	r := colorutil.ContrastRatioRGB(ca, cb)
	return ContrastRow{
		A:       ca.Hex(),
		B:       cb.Hex(),
		Ratio:   r,
		AA:      r >= ratioAA,
		AALarge: r >= ratioAALarge,
		AAA:     r >= ratioAAA,
	}, nil
}

// Table is the column view shared by the table, csv and markdown writers.
// Cells of SwatchColumn hold hex colors and get painted when color is on;
// -1 disables swatches.
type Table struct {
	Headers      []string
	Aligns       []textutil.Align
	Rows         [][]string
	SwatchColumn int
}

// Payload carries one result in every shape the writers need.
type Payload struct {
	Table Table
	// Records are emitted as a JSON array or one NDJSON line each.
	Records []any
	// YAML and TOML documents; nil falls back to Records under Key.
	YAML any
	TOML any
	Key  string
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func LuminancePayload(rows []LuminanceRow) Payload {
	t := Table{
		Headers:      []string{"color", "hex", "luminance"},
		Aligns:       []textutil.Align{textutil.AlignLeft, textutil.AlignLeft, textutil.AlignRight},
		SwatchColumn: 1,
	}
	records := make([]any, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Color, r.Hex, formatFloat(r.Luminance, 4)})
		records = append(records, r)
	}
	return Payload{Table: t, Records: records, Key: "luminance"}
}

func ContrastPayload(rows []ContrastRow) Payload {
	t := Table{
		Headers: []string{"a", "b", "ratio", "aa", "aa_large", "aaa"},
		Aligns: []textutil.Align{
			textutil.AlignLeft, textutil.AlignLeft, textutil.AlignRight,
			textutil.AlignLeft, textutil.AlignLeft, textutil.AlignLeft,
		},
		SwatchColumn: -1,
	}
	records := make([]any, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.A, r.B, formatFloat(r.Ratio, 2),
			formatBool(r.AA), formatBool(r.AALarge), formatBool(r.AAA),
		})
		records = append(records, r)
	}
	return Payload{Table: t, Records: records, Key: "contrast"}
}

func ReportPayload(reports []solver.Report) Payload {
	t := Table{
		Headers: []string{"input", "result", "target", "luminance", "contrast", "delta_e", "hue", "saturation"},
		Aligns: []textutil.Align{
			textutil.AlignLeft, textutil.AlignLeft, textutil.AlignRight, textutil.AlignRight,
			textutil.AlignRight, textutil.AlignRight, textutil.AlignRight, textutil.AlignRight,
		},
		SwatchColumn: 1,
	}
	records := make([]any, 0, len(reports))
	for _, r := range reports {
		contrast := ""
		if r.Contrast != nil {
			contrast = formatFloat(*r.Contrast, 2)
		}
		t.Rows = append(t.Rows, []string{
			r.Input, r.Result, formatFloat(r.Target, 4), formatFloat(r.Luminance, 4),
			contrast, formatFloat(r.DeltaE, 2), formatFloat(r.Hue, 0), formatFloat(r.Saturation, 0),
		})
		records = append(records, r)
	}
	return Payload{Table: t, Records: records, Key: "report"}
}

// RampPayload lays ramps out one level per row. YAML and TOML get design
// token documents instead of the raw records.
func RampPayload(ramps []*ramp.Ramp) Payload {
	t := Table{
		Headers: []string{"ramp", "key", "hex", "luminance", "target"},
		Aligns: []textutil.Align{
			textutil.AlignLeft, textutil.AlignRight, textutil.AlignLeft,
			textutil.AlignRight, textutil.AlignRight,
		},
		SwatchColumn: 2,
	}
	records := make([]any, 0, len(ramps))
	for _, r := range ramps {
		name := rampName(r)
		for _, e := range r.Entries() {
			t.Rows = append(t.Rows, []string{
				name, strconv.Itoa(e.Key), e.Hex, formatFloat(e.Luminance, 4), formatFloat(e.Target, 4),
			})
		}
		records = append(records, r)
	}
	return Payload{
		Table:   t,
		Records: records,
		YAML:    RampTokens(ramps),
		TOML:    rampDocument(ramps),
		Key:     "ramp",
	}
}

func rampName(r *ramp.Ramp) string {
	if r.Name != "" {
		return r.Name
	}
	return r.Base
}
