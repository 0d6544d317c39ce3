package hal

import "errors"

var (
	// ErrStop is returned by an app step to end the run loop normally.
	ErrStop = errors.New("stop")
	// ErrFrameSize is returned by Present when the frame does not match the framebuffer.
	ErrFrameSize = errors.New("frame size mismatch")
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Framebuffer receives whole frames of packed 0xRRGGBB pixels, row-major.
type Framebuffer interface {
	Width() int
	Height() int
	Present(pix []uint32) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyR
)

// KeyState is the set of keys held during one frame.
type KeyState uint32

// Keys returns a state with the given keys held.
func Keys(keys ...KeyCode) KeyState {
	return KeyState(0).With(keys...)
}

// With returns s with the given keys added.
func (s KeyState) With(keys ...KeyCode) KeyState {
	for _, k := range keys {
		if k != KeyUnknown {
			s |= 1 << k
		}
	}
	return s
}

// Down reports whether k is held.
func (s KeyState) Down(k KeyCode) bool {
	return k != KeyUnknown && s&(1<<k) != 0
}

// Keyboard reports which keys are held for the current frame.
type Keyboard interface {
	State() KeyState
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// HAL is the app's only contact point with the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
