package output

import (
	"fmt"
	"io"
)

// Write renders p in format, which must already be normalized
// (see opts.NormalizeOutput).
func Write(w io.Writer, format string, p Payload, style TableStyle) error {
	switch format {
	case "", "table":
		return WriteTable(w, p.Table, style)
	case "json":
		records := p.Records
		if records == nil {
			records = []any{}
		}
		return WriteJSON(w, records)
	case "ndjson":
		return WriteNDJSON(w, p.Records)
	case "csv":
		return WriteCSV(w, p.Table)
	case "markdown":
		return WriteMarkdownTable(w, p.Table)
	case "yaml":
		if p.YAML != nil {
			return WriteYAML(w, p.YAML)
		}
		return WriteYAML(w, map[string]any{p.key(): p.Records})
	case "toml":
		if p.TOML != nil {
			return WriteTOML(w, p.TOML)
		}
		return WriteTOML(w, map[string]any{p.key(): p.Records})
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func (p Payload) key() string {
	if p.Key == "" {
		return "result"
	}
	return p.Key
}
