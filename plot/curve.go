package plot

import "math"

// Rows outside the int32 range are treated like non-finite samples.
const (
	minRow = math.MinInt32
	maxRow = math.MaxInt32
)

// DrawFunc samples f once per pixel column and draws y = f(x) as a connected curve.
//
// Each sample is plotted as a two-pixel diagonal dot. When the row changes between neighbouring
// columns, the rows in between are filled on both columns so steep slopes stay connected. A sample
// whose evaluation fails, is not finite, or maps outside the int32 row range is skipped and breaks
// the curve: the next good sample starts a new run.
func (s *Surface) DrawFunc(f func(float64) (float64, error), c Color) {
	prev, havePrev := 0, false
	for px := 0; px < s.width; px++ {
		y, err := f(s.ToMathX(float64(px)))
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			havePrev = false
			continue
		}
		fy := s.ToPixelY(y)
		if math.IsNaN(fy) || fy < minRow || fy > maxRow {
			havePrev = false
			continue
		}
		py := int(fy)

		s.DrawPixel(px, py, c)
		s.DrawPixel(px+1, py+1, c)

		if havePrev {
			// Rows outside [-1, height-1] never reach the buffer.
			lo := max(min(prev, py), -1)
			hi := min(max(prev, py), s.height-1)
			for r := lo; r <= hi; r++ {
				s.DrawPixel(px-1, r, c)
				s.DrawPixel(px, r+1, c)
			}
		}
		prev, havePrev = py, true
	}
}
