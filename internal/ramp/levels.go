package ramp

// Level は 1 段のキーと目標輝度
type Level struct {
	Key       int     `json:"key"`
	Luminance float64 `json:"luminance"`
}

// Levels は明るい順に並んだ既定の段。輝度が 0 または 1 の段は生成時に飛ばされる。
var Levels = []Level{
	{Key: 0, Luminance: 1.0},
	{Key: 10, Luminance: 0.9},
	{Key: 20, Luminance: 0.7},
	{Key: 30, Luminance: 0.52},
	{Key: 40, Luminance: 0.38},
	{Key: 50, Luminance: 0.27},
	{Key: 60, Luminance: 0.155},
	{Key: 70, Luminance: 0.1},
	{Key: 80, Luminance: 0.052},
	{Key: 90, Luminance: 0.026},
	{Key: 100, Luminance: 0.0085},
}

func (l Level) degenerate() bool {
	return l.Luminance <= 0 || l.Luminance >= 1
}

// ActiveLevels returns the levels the generator solves, in table order.
func ActiveLevels() []Level {
	out := make([]Level, 0, len(Levels))
	for _, l := range Levels {
		if !l.degenerate() {
			out = append(out, l)
		}
	}
	return out
}
