package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"plotter/expr"
	"plotter/plot"
)

const (
	hudMargin     = 4
	hudLineHeight = 12
)

// Render draws one frame on top of the current surface contents: axes, grid, the curve of f and,
// when enabled, the HUD.
func Render(st *State, f expr.Func, label string, cfg Config) {
	s := st.Surface
	s.DrawAxis(cfg.AxisColor)
	s.DrawGrid(cfg.GridColor, st.PeriodX, st.PeriodY)
	s.DrawFunc(f, cfg.CurveColor)
	if cfg.HUD {
		drawHUD(s, hudLines(st, label), cfg.CurveColor)
	}
}

func hudLines(st *State, label string) []string {
	return []string{
		"y = " + label,
		fmt.Sprintf("sx=%g sy=%g gx=%d gy=%d", st.Surface.ScaleX, st.Surface.ScaleY, st.PeriodX, st.PeriodY),
	}
}

// drawHUD wraps lines to the surface width and draws them top-down until the surface is full.
func drawHUD(s *plot.Surface, lines []string, c plot.Color) {
	charW := plot.TextWidth("0")
	if charW <= 0 {
		return
	}
	cols := (s.Width() - 2*hudMargin) / charW
	if cols <= 0 {
		cols = 1
	}

	y := hudMargin + hudLineHeight - 2
	for _, line := range lines {
		for len(line) > 0 {
			if y > s.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			s.DrawText(hudMargin, y, chunk, c)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
