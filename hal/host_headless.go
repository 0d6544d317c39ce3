package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after N frames; 0 runs until ErrStop or cancellation.
	Ticks  uint64
	Width  int
	Height int
	// Script holds the keys reported on each tick, starting with the first.
	Script []KeyState
}

// RunHeadless drives the app from a ticker without opening a window. ErrStop from the app ends the
// run with a nil error.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	kbd := &scriptKeyboard{script: cfg.Script}
	h, err := newHostHAL(cfg.Width, cfg.Height, kbd)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	if step == nil {
		step = func() error { return nil }
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	defer func() {
		h.logger.WriteLineString(fmt.Sprintf("headless: %d ticks, %d frames", tick, h.fb.presented()))
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			err := step()
			kbd.advance()
			tick++
			if errors.Is(err, ErrStop) {
				return nil
			}
			if err != nil {
				return err
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
