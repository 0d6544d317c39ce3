package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"plotter/internal/buildinfo"
)

// AppFactory builds an app against h and returns its per-frame step.
type AppFactory func(h HAL) (step func() error, err error)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    Keyboard
}

func newHostHAL(width, height int, kbd Keyboard) (*hostHAL, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	return &hostHAL{
		logger: &hostLogger{w: os.Stderr},
		fb:     newHostFramebuffer(width, height),
		kbd:    kbd,
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

func windowTitle(title string) string {
	if title == "" {
		title = "plotter"
	}
	return title + " (" + buildinfo.Short() + ")"
}
