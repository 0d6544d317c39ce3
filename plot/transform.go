package plot

// ToPixelX maps a math-space x to a fractional pixel column.
func (s *Surface) ToPixelX(x float64) float64 {
	return s.OffsetX + x*s.ScaleX
}

// ToPixelY maps a math-space y to a fractional pixel row. Rows grow downward, so y is negated.
func (s *Surface) ToPixelY(y float64) float64 {
	return s.OffsetY - y*s.ScaleY
}

// ToMathX maps a pixel column back to math-space x.
func (s *Surface) ToMathX(px float64) float64 {
	return (px - s.OffsetX) / s.ScaleX
}

// ToMathY maps a pixel row back to math-space y.
func (s *Surface) ToMathY(py float64) float64 {
	return (s.OffsetY - py) / s.ScaleY
}
