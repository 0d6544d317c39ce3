package hal

import (
	"fmt"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []uint32
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

func (f *hostFramebuffer) Width() int  { return f.width }
func (f *hostFramebuffer) Height() int { return f.height }

func (f *hostFramebuffer) Present(pix []uint32) error {
	if len(pix) != len(f.pix) {
		return fmt.Errorf("%w: got %d pixels, want %dx%d", ErrFrameSize, len(pix), f.width, f.height)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.pix, pix)
	f.frames++
	return nil
}

// snapshotRGBA copies the last presented frame into dst as RGBA bytes.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rgbaFromRGB888(dst, f.pix)
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}
