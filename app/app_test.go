package app

import (
	"errors"
	"strings"
	"testing"

	"plotter/expr"
	"plotter/hal"
	"plotter/plot"
)

type recordLogger struct {
	lines []string
}

func (l *recordLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *recordLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *recordLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeFramebuffer struct {
	w, h   int
	last   []uint32
	frames int
	err    error
}

func (f *fakeFramebuffer) Width() int  { return f.w }
func (f *fakeFramebuffer) Height() int { return f.h }

func (f *fakeFramebuffer) Present(pix []uint32) error {
	if f.err != nil {
		return f.err
	}
	f.last = append(f.last[:0], pix...)
	f.frames++
	return nil
}

type fakeKeyboard struct {
	state hal.KeyState
}

func (k *fakeKeyboard) State() hal.KeyState { return k.state }

type fakeHAL struct {
	log *recordLogger
	fb  *fakeFramebuffer
	kbd *fakeKeyboard
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{log: &recordLogger{}, fb: &fakeFramebuffer{w: w, h: h}, kbd: &fakeKeyboard{}}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }

func bindExpr(t *testing.T, src string) expr.Func {
	t.Helper()
	e, err := expr.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	f, err := e.Bind("x")
	if err != nil {
		t.Fatalf("Bind(%q) error: %v", src, err)
	}
	return f
}

func newTestApp(t *testing.T, h *fakeHAL, src string, cfg Config) *App {
	t.Helper()
	a, err := New(h, bindExpr(t, src), src, cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return a
}

func TestStep_EndToEndIdentity(t *testing.T) {
	h := newFakeHAL(DefaultWidth, DefaultHeight)
	a := newTestApp(t, h, "x", DefaultConfig())

	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if h.fb.frames != 1 {
		t.Fatalf("frames=%d, want 1", h.fb.frames)
	}
	at := func(x, y int) plot.Color { return plot.Color(h.fb.last[y*DefaultWidth+x]) }
	for _, p := range [][2]int{{500, 400}, {550, 350}} {
		if got := at(p[0], p[1]); got != plot.Black {
			t.Fatalf("frame(%d,%d)=%06x, want curve color", p[0], p[1], got)
		}
	}
	if got := at(499, 10); got != plot.Gray {
		t.Fatalf("frame(499,10)=%06x, want axis color", got)
	}
	if got := at(10, 10); got != plot.White {
		t.Fatalf("frame(10,10)=%06x, want background", got)
	}
	if !h.log.contains("start y = x") {
		t.Fatalf("missing start log, got %q", h.log.lines)
	}
}

func TestStep_EscapeStopsWithoutPresenting(t *testing.T) {
	h := newFakeHAL(100, 80)
	a := newTestApp(t, h, "x", DefaultConfig())
	h.kbd.state = hal.Keys(hal.KeyEscape, hal.KeyUp)

	if err := a.Step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("Step err=%v, want ErrStop", err)
	}
	if h.fb.frames != 0 {
		t.Fatalf("frames=%d, want 0", h.fb.frames)
	}
	if a.Surface().ScaleY != plot.DefaultScale {
		t.Fatalf("ScaleY=%v, Escape frame must not apply other keys", a.Surface().ScaleY)
	}
	if !h.log.contains("exit") {
		t.Fatalf("missing exit log, got %q", h.log.lines)
	}
}

func TestStep_PresentErrorIsFatal(t *testing.T) {
	h := newFakeHAL(10, 10)
	h.fb.err = hal.ErrFrameSize
	a := newTestApp(t, h, "x", DefaultConfig())

	err := a.Step()
	var fe *FatalError
	if !errors.As(err, &fe) || fe.Op != "present frame" {
		t.Fatalf("Step err=%v, want FatalError(present frame)", err)
	}
	if !errors.Is(err, hal.ErrFrameSize) {
		t.Fatalf("Step err=%v, want wrapped ErrFrameSize", err)
	}
}

func TestStep_PanicBecomesFatal(t *testing.T) {
	h := newFakeHAL(10, 10)
	boom := func(float64) (float64, error) { panic("boom") }
	a, err := New(h, boom, "boom", DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = a.Step()
	var fe *FatalError
	if !errors.As(err, &fe) || fe.Op != "render frame" {
		t.Fatalf("Step err=%v, want FatalError(render frame)", err)
	}
	if !h.log.contains("panic: boom") {
		t.Fatalf("panic not logged, got %q", h.log.lines)
	}
}

func TestNew_RejectsEmptyFramebuffer(t *testing.T) {
	h := newFakeHAL(0, 0)
	_, err := New(h, bindExpr(t, "x"), "x", DefaultConfig())
	if !errors.Is(err, plot.ErrSize) {
		t.Fatalf("New err=%v, want ErrSize", err)
	}
}

func TestStep_ResetScenario(t *testing.T) {
	h := newFakeHAL(200, 160)
	a := newTestApp(t, h, "sin(x)", DefaultConfig())

	for _, keys := range []hal.KeyState{
		hal.Keys(hal.KeyUp),
		hal.Keys(hal.KeyUp),
		hal.Keys(hal.KeyRight),
		hal.Keys(hal.KeyLeft, hal.KeyLeft),
		hal.Keys(hal.KeyR),
	} {
		h.kbd.state = keys
		if err := a.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	st := a.State()
	if st.Surface.ScaleX != 50 || st.Surface.ScaleY != 50 || st.PeriodX != ResetPeriodX || st.PeriodY != ResetPeriodY {
		t.Fatalf("after reset sx=%v sy=%v gx=%d gy=%d", st.Surface.ScaleX, st.Surface.ScaleY, st.PeriodX, st.PeriodY)
	}
	if !h.log.contains("reset") {
		t.Fatalf("missing reset log, got %q", h.log.lines)
	}
}

func TestStep_HUDDrawsLabel(t *testing.T) {
	region := func(a *App) int {
		n := 0
		for y := 0; y < 30; y++ {
			for x := 0; x < 100; x++ {
				if a.Surface().At(x, y) != plot.White {
					n++
				}
			}
		}
		return n
	}

	plain := newTestApp(t, newFakeHAL(DefaultWidth, DefaultHeight), "x", DefaultConfig())
	if err := plain.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n := region(plain); n != 0 {
		t.Fatalf("top-left region has %d pixels without HUD", n)
	}

	cfg := DefaultConfig()
	cfg.HUD = true
	hud := newTestApp(t, newFakeHAL(DefaultWidth, DefaultHeight), "x", cfg)
	if err := hud.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if region(hud) == 0 {
		t.Fatalf("HUD drew nothing in the top-left region")
	}
}

func TestFactory_StoresApp(t *testing.T) {
	var a *App
	f := Factory(bindExpr(t, "x"), "x", DefaultConfig(), &a)
	step, err := f(newFakeHAL(20, 20))
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if a == nil || step == nil {
		t.Fatalf("factory returned app=%v step=%v", a, step != nil)
	}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func TestFatalError(t *testing.T) {
	if Fatal("op", nil) != nil {
		t.Fatalf("Fatal(nil) != nil")
	}
	err := Fatal("parse expression", expr.ErrParse)
	if got := err.Error(); got != "parse expression: parse error" {
		t.Fatalf("Error()=%q", got)
	}
	if !errors.Is(err, expr.ErrParse) {
		t.Fatalf("errors.Is(ErrParse)=false")
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"héllo", 2, "hé", "llo"},
		{"x", 0, "", "x"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.in, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q,%d)=%q,%q want %q,%q", tt.in, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}

func TestHUDLines(t *testing.T) {
	st, err := NewState(100, 100, plot.White)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	lines := hudLines(st, "sin(x)")
	if lines[0] != "y = sin(x)" || lines[1] != "sx=50 sy=50 gx=150 gy=150" {
		t.Fatalf("hudLines=%q", lines)
	}
}
