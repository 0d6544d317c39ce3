package app

import (
	"fmt"

	"plotter/plot"
)

const (
	DefaultWidth  = 1000
	DefaultHeight = 800
	DefaultTitle  = "Graphics"

	DefaultPeriodX = 150
	DefaultPeriodY = 150

	// The reset periods differ per axis.
	ResetPeriodX = 156
	ResetPeriodY = 100

	// Scales only shrink while strictly above MinScale.
	MinScale  = 10.0
	ScaleStep = 2.0

	// Periods only shrink while strictly above these floors.
	PeriodStep   = 2
	PeriodFloorX = 5
	PeriodFloorY = 6
)

// Config holds the process parameters of the plotter.
type Config struct {
	Title  string
	Width  int
	Height int

	Background plot.Color
	AxisColor  plot.Color
	GridColor  plot.Color
	CurveColor plot.Color

	// HUD draws the expression and current scales in the top-left corner.
	HUD bool
}

func DefaultConfig() Config {
	return Config{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: plot.White,
		AxisColor:  plot.Gray,
		GridColor:  plot.Black,
		CurveColor: plot.Black,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", plot.ErrSize, c.Width, c.Height)
	}
	return nil
}
