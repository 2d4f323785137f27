package ramp

import (
	"errors"
	"fmt"
)

// Spec names one ramp of a palette.
type Spec struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Base string `json:"base" yaml:"base" toml:"base"`
}

// BuildPalette は複数の Ramp を並列に生成し、入力と同じ順序で返します。
// 失敗した Ramp はその名前を付けたエラーとしてまとめて返します。
func BuildPalette(specs []Spec, opts Options) ([]*Ramp, error) {
	out := make([]*Ramp, len(specs))
	errs := make([]error, len(specs))
	forEach(len(specs), opts.Jobs, func(i int) {
		ro := opts
		ro.Name = specs[i].Name
		// levels of one ramp run sequentially; the palette pool already fans out
		ro.Jobs = 1
		r, err := Build(specs[i].Base, ro)
		if err != nil {
			errs[i] = fmt.Errorf("ramp %s: %w", specs[i].Name, err)
			return
		}
		out[i] = r
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
