package plot

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Display)(nil)

// Display adapts a Surface to drivers.Displayer so tinyfont can draw into it. Writes go through
// DrawPixel and keep its bounds policy.
type Display struct {
	s *Surface
}

func NewDisplay(s *Surface) *Display {
	return &Display{s: s}
}

func (d *Display) Size() (x, y int16) {
	return clampInt16(d.s.width), clampInt16(d.s.height)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	d.s.DrawPixel(int(x), int(y), FromRGBA(c))
}

// Display is a no-op; the frame loop presents the whole surface.
func (d *Display) Display() error { return nil }

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
