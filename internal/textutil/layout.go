package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI と OSC のエスケープシーケンス
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI は色付けなどのエスケープシーケンスを取り除く。
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth は端末上の表示幅を返す。エスケープシーケンスは幅に含めない。
func VisibleWidth(s string) int {
	width := 0
	forEachGrapheme(StripANSI(s), func(seg string, w int) bool {
		width += w
		return true
	})
	return width
}

func forEachGrapheme(s string, fn func(seg string, width int) bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		seg := g.Str()
		if !fn(seg, runewidth.StringWidth(seg)) {
			return
		}
	}
}

// TruncateByWidth は書記素を壊さずに幅 w へ切り詰める。切り詰めた場合、
// 収まるなら ellipsis を末尾に付ける。
func TruncateByWidth(s string, w int, ellipsis string) string {
	if w <= 0 || s == "" {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	limit := w
	ellW := runewidth.StringWidth(ellipsis)
	if ellW <= w {
		limit = w - ellW
	} else {
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	forEachGrapheme(StripANSI(s), func(seg string, segW int) bool {
		if used+segW > limit {
			return false
		}
		b.WriteString(seg)
		used += segW
		return true
	})
	return b.String() + ellipsis
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Pad は表示幅が w になるまで空白で埋める。
func Pad(s string, w int, align Align) string {
	n := w - VisibleWidth(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func PadRight(s string, w int) string { return Pad(s, w, AlignLeft) }

func PadLeft(s string, w int) string { return Pad(s, w, AlignRight) }

// ColumnWidths returns the widest visible cell of every column.
func ColumnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// AlignRow pads each cell to widths and joins them with sep. The last column
// is left unpadded when it is left aligned, so lines carry no trailing blanks.
func AlignRow(cells []string, widths []int, aligns []Align, sep string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(sep)
		}
		align := AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		if i == len(cells)-1 && align == AlignLeft {
			b.WriteString(cell)
			continue
		}
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		b.WriteString(Pad(cell, w, align))
	}
	return b.String()
}
