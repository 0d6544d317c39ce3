package plot

// DrawAxis draws the two coordinate axes, each two pixels wide: the column at the truncated OffsetX
// plus the one left of it, and the row at the truncated OffsetY plus the one above it. The companion
// line is skipped when the center index is 0.
func (s *Surface) DrawAxis(c Color) {
	xCenter := int(s.OffsetX)
	for y := 0; y < s.height; y++ {
		s.DrawPixel(xCenter, y, c)
		if xCenter > 0 {
			s.DrawPixel(xCenter-1, y, c)
		}
	}

	yCenter := int(s.OffsetY)
	for x := 0; x < s.width; x++ {
		s.DrawPixel(x, yCenter, c)
		if yCenter > 0 {
			s.DrawPixel(x, yCenter-1, c)
		}
	}
}
