package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Image copies the surface into a new opaque RGBA image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	dst := img.Pix
	for i, c := range s.buf {
		r, g, b := c.RGB()
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
	return img
}

// Encode writes the surface as an image. format is a file extension such as ".png" or "bmp".
func (s *Surface) Encode(w io.Writer, format string) error {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "png":
		return png.Encode(w, s.Image())
	case "bmp":
		return bmp.Encode(w, s.Image())
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// SaveImage writes the surface to path, picking the encoder from the extension.
func SaveImage(s *Surface, path string) error {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".bmp":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := s.Encode(f, ext); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
