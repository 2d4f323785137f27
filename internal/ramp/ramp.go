package ramp

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/phyten/lumaramp/internal/colorutil"
	"github.com/phyten/lumaramp/internal/solver"
)

const maxJobs = 64

// Options は生成オプション
type Options struct {
	Name        string
	Jobs        int
	MaxAttempts int
	// Advance is called once per solved level. It may be called from several goroutines.
	Advance func()
	Trace   func(level Level, step solver.Step)
}

// Entry は 1 段分の結果
type Entry struct {
	Key       int     `json:"key"`
	Hex       string  `json:"hex"`
	Luminance float64 `json:"luminance"`
	Target    float64 `json:"target"`
}

// Ramp は 1 つの基準色から作られた色の段。作成後は変更されない。
type Ramp struct {
	Name    string
	Base    string
	entries []Entry
}

// Build は基準色から各段の色を求めて Ramp を返します。
//
// 段ごとの探索は互いに独立しているため、Options.Jobs 個のワーカーで並列に実行します。
// 結果は段の順序で保持され、同じ基準色からは常に同じ Ramp が得られます。
func Build(color string, opts Options) (*Ramp, error) {
	base, err := colorutil.NormalizeHex(color)
	if err != nil {
		return nil, err
	}
	if opts.MaxAttempts < 0 {
		return nil, fmt.Errorf("%w: max attempts must be positive, got %d", solver.ErrInvalidArgument, opts.MaxAttempts)
	}
	levels := ActiveLevels()
	entries := make([]Entry, len(levels))

	var errsMu sync.Mutex
	var firstErr error

	forEach(len(levels), opts.Jobs, func(i int) {
		level := levels[i]
		so := solver.Options{MaxAttempts: opts.MaxAttempts}
		if opts.Trace != nil {
			so.Trace = func(s solver.Step) { opts.Trace(level, s) }
		}
		fail := func(err error) {
			errsMu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("level %d: %w", level.Key, err)
			}
			errsMu.Unlock()
		}
		hex, err := solver.SolveLuminance(base, level.Luminance, so)
		if err != nil {
			fail(err)
			return
		}
		rgb, err := colorutil.ParseHex(hex)
		if err != nil {
			fail(err)
			return
		}
		entries[i] = Entry{Key: level.Key, Hex: hex, Luminance: colorutil.LuminanceRGB(rgb), Target: level.Luminance}
		if opts.Advance != nil {
			opts.Advance()
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return &Ramp{Name: opts.Name, Base: base, entries: entries}, nil
}

// Entries returns a copy of the levels in table order.
func (r *Ramp) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Value returns the color for a level key.
func (r *Ramp) Value(key int) (string, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e.Hex, true
		}
	}
	return "", false
}

// Values returns a fresh level -> hex map.
func (r *Ramp) Values() map[int]string {
	out := make(map[int]string, len(r.entries))
	for _, e := range r.entries {
		out[e.Key] = e.Hex
	}
	return out
}

// Keys returns the level keys in ascending order.
func (r *Ramp) Keys() []int {
	keys := make([]int, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.Key)
	}
	sort.Ints(keys)
	return keys
}

type rampJSON struct {
	Name    string         `json:"name,omitempty"`
	Base    string         `json:"base"`
	Values  map[int]string `json:"values"`
	Entries []Entry        `json:"entries"`
}

func (r *Ramp) MarshalJSON() ([]byte, error) {
	return json.Marshal(rampJSON{Name: r.Name, Base: r.Base, Values: r.Values(), Entries: r.entries})
}

// forEach runs fn(0..n-1) on a bounded pool of workers.
func forEach(n, jobs int, fn func(i int)) {
	if n == 0 {
		return
	}
	nw := normalizeJobs(jobs)
	if nw > n {
		nw = n
	}
	work := make(chan int)
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)
	wg.Wait()
}

func normalizeJobs(jobs int) int {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}
