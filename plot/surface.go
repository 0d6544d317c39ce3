package plot

import (
	"errors"
	"fmt"
)

var (
	// ErrSize is returned for a non-positive surface size.
	ErrSize = errors.New("plot: invalid surface size")

	// ErrFormat is returned when a snapshot path has no supported image extension.
	ErrFormat = errors.New("plot: unsupported image format")
)

// DefaultScale is the initial pixels-per-unit on both axes.
const DefaultScale = 50.0

// Surface owns a row-major pixel buffer and the transform between pixel space and math space.
//
// ScaleX and ScaleY are pixels per math unit and must stay positive; the frame loop enforces the
// lower bound before it decrements them. OffsetX and OffsetY locate the math origin in pixels and are
// fixed at the buffer center.
type Surface struct {
	width  int
	height int
	buf    []Color

	ScaleX  float64
	ScaleY  float64
	OffsetX float64
	OffsetY float64
}

// NewSurface returns a white surface with the default scale and the origin at the center.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	s := &Surface{
		width:   width,
		height:  height,
		buf:     make([]Color, width*height),
		ScaleX:  DefaultScale,
		ScaleY:  DefaultScale,
		OffsetX: float64(width) / 2,
		OffsetY: float64(height) / 2,
	}
	s.Clear(White)
	return s, nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Pixels returns the backing buffer. The slice aliases the surface.
func (s *Surface) Pixels() []Color { return s.buf }

// Clear sets every pixel to c.
func (s *Surface) Clear(c Color) {
	for i := range s.buf {
		s.buf[i] = c
	}
}

// DrawPixel sets the pixel at column x, row y. Coordinates outside the buffer are ignored.
func (s *Surface) DrawPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.buf[y*s.width+x] = c
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.buf[y*s.width+x]
}
