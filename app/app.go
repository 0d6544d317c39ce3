package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"plotter/expr"
	"plotter/hal"
	"plotter/plot"
)

// App is the plotter frame loop bound to one HAL.
type App struct {
	log   hal.Logger
	fb    hal.Framebuffer
	kbd   hal.Keyboard
	cfg   Config
	fn    expr.Func
	label string

	st    *State
	frame []uint32
}

// New builds an app that plots fn, labelled by label, on h's framebuffer. The surface takes the
// framebuffer's size.
func New(h hal.HAL, fn expr.Func, label string, cfg Config) (*App, error) {
	fb := h.Display().Framebuffer()
	st, err := NewState(fb.Width(), fb.Height(), cfg.Background)
	if err != nil {
		return nil, Fatal("create surface", err)
	}
	a := &App{
		log:   h.Logger(),
		fb:    fb,
		kbd:   h.Input().Keyboard(),
		cfg:   cfg,
		fn:    fn,
		label: label,
		st:    st,
		frame: make([]uint32, fb.Width()*fb.Height()),
	}
	a.log.WriteLineString(fmt.Sprintf("plotter: start y = %s (%dx%d)", label, fb.Width(), fb.Height()))
	return a, nil
}

// Factory adapts New to the host runners and stores the built app in *out.
func Factory(fn expr.Func, label string, cfg Config, out **App) hal.AppFactory {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, fn, label, cfg)
		if err != nil {
			return nil, err
		}
		if out != nil {
			*out = a
		}
		return a.Step, nil
	}
}

func (a *App) State() *State { return a.st }

func (a *App) Surface() *plot.Surface { return a.st.Surface }

// Step runs one frame: read keys, update the view, render and present. It returns hal.ErrStop when
// Escape is held, without rendering.
func (a *App) Step() (err error) {
	defer a.recoverStep(&err)

	in := InputFromKeys(a.kbd.State())
	if in.Exit {
		a.log.WriteLineString("plotter: exit")
		return hal.ErrStop
	}
	if Update(a.st, in, a.cfg.Background) {
		a.log.WriteLineString(fmt.Sprintf("plotter: reset sx=%g sy=%g", a.st.Surface.ScaleX, a.st.Surface.ScaleY))
	}
	Render(a.st, a.fn, a.label, a.cfg)

	for i, c := range a.st.Surface.Pixels() {
		a.frame[i] = uint32(c)
	}
	return Fatal("present frame", a.fb.Present(a.frame))
}

// recoverStep turns a panic inside Step into a FatalError after logging it with its stack.
func (a *App) recoverStep(err *error) {
	r := recover()
	if r == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf("plotter: panic: %v", r))
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		a.log.WriteLineString(line)
	}
	*err = &FatalError{Op: "render frame", Err: fmt.Errorf("panic: %v", r)}
}
