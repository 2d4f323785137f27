package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

func isTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// ShouldShowProgress は --progress / --no-progress と端末判定から表示可否を決めます。
func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

// Progress はランプ生成の進捗を1行で表示します。Advance は複数のワーカーから呼ばれます。
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	total   int
	done    int
	start   time.Time
	enabled bool
}

func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	return &Progress{w: w, total: total, start: time.Now(), enabled: enabled}
}

// Advance は完了数を1つ進めて行を書き直します。
func (p *Progress) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if !p.enabled {
		return
	}
	// clear line and print
	fmt.Fprintf(p.w, "\r\033[K[progress] %d/%d (%d%%) ETA %s",
		p.done, p.total, percent(p.done, p.total), formatETA(time.Since(p.start), p.done, p.total))
}

func (p *Progress) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "\r\033[K")
}

// formatETA は経過時間から残り時間を線形に見積もります。未着手なら "-" です。
func formatETA(elapsed time.Duration, done, total int) string {
	if done <= 0 {
		return "-"
	}
	if done >= total {
		return "00:00:00"
	}
	remain := time.Duration(float64(elapsed) * float64(total-done) / float64(done))
	return fmt.Sprintf("%02d:%02d:%02d", int(remain.Hours()), int(remain.Minutes())%60, int(remain.Seconds())%60)
}

func percent(a, b int) int {
	if b == 0 || a >= b {
		return 100
	}
	return int(float64(a) * 100 / float64(b))
}
