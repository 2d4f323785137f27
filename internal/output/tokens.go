package output

import (
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/phyten/lumaramp/internal/ramp"
	"gopkg.in/yaml.v3"
)

// RampTokens builds a design token document, `name: {level: hex}`, keeping
// ramp and level order.
func RampTokens(ramps []*ramp.Ramp) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range ramps {
		levels := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range r.Entries() {
			levels.Content = append(levels.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(e.Key)},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Hex, Style: yaml.DoubleQuotedStyle},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rampName(r)},
			levels,
		)
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}

type tomlLevel struct {
	Key       int     `toml:"key"`
	Hex       string  `toml:"hex"`
	Luminance float64 `toml:"luminance"`
}

type tomlRamp struct {
	Name   string      `toml:"name"`
	Base   string      `toml:"base"`
	Levels []tomlLevel `toml:"level"`
}

type tomlDocument struct {
	Ramps []tomlRamp `toml:"ramp"`
}

func rampDocument(ramps []*ramp.Ramp) tomlDocument {
	doc := tomlDocument{Ramps: make([]tomlRamp, 0, len(ramps))}
	for _, r := range ramps {
		tr := tomlRamp{Name: rampName(r), Base: r.Base}
		for _, e := range r.Entries() {
			tr.Levels = append(tr.Levels, tomlLevel{Key: e.Key, Hex: e.Hex, Luminance: e.Luminance})
		}
		doc.Ramps = append(doc.Ramps, tr)
	}
	return doc
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func WriteTOML(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}
