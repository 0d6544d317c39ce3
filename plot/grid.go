package plot

// DrawGrid draws reference lines mirrored about the buffer center.
//
// Line i sits (i + period*i)/2 pixels from the center, so the gap between lines grows with i.
// A non-positive period draws no lines in that direction.
func (s *Surface) DrawGrid(c Color, periodX, periodY int) {
	for _, y := range gridLines(s.height, periodY) {
		for x := 0; x < s.width; x++ {
			s.DrawPixel(x, y, c)
		}
	}
	for _, x := range gridLines(s.width, periodX) {
		for y := 0; y < s.height; y++ {
			s.DrawPixel(x, y, c)
		}
	}
}

// gridLines returns the line positions for one direction in drawing order, including positions
// outside [0, extent).
func gridLines(extent, period int) []int {
	if period <= 0 {
		return nil
	}
	n := extent / period
	out := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		d := (i + period*i) / 2
		out = append(out, extent/2-d, extent/2+d)
	}
	return out
}
