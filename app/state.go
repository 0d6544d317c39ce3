package app

import (
	"plotter/hal"
	"plotter/plot"
)

// State is the mutable view: the surface with its scales plus the grid periods.
type State struct {
	Surface *plot.Surface
	PeriodX int
	PeriodY int
}

func NewState(width, height int, bg plot.Color) (*State, error) {
	s, err := plot.NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	s.Clear(bg)
	return &State{Surface: s, PeriodX: DefaultPeriodX, PeriodY: DefaultPeriodY}, nil
}

// Input is the set of plotter commands held during one frame.
type Input struct {
	Exit  bool
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Reset bool
}

func InputFromKeys(k hal.KeyState) Input {
	return Input{
		Exit:  k.Down(hal.KeyEscape),
		Up:    k.Down(hal.KeyUp),
		Down:  k.Down(hal.KeyDown),
		Left:  k.Down(hal.KeyLeft),
		Right: k.Down(hal.KeyRight),
		Reset: k.Down(hal.KeyR),
	}
}

// Update applies one frame of input to st, in the order Up, Down, Right, Left, Reset. Every command
// that takes effect clears the surface to bg first. It reports whether Reset was applied.
func Update(st *State, in Input, bg plot.Color) bool {
	s := st.Surface
	if in.Up {
		s.Clear(bg)
		s.ScaleY += ScaleStep
		st.PeriodY += PeriodStep
	}
	if in.Down && s.ScaleY > MinScale {
		s.Clear(bg)
		s.ScaleY -= ScaleStep
		if st.PeriodY > PeriodFloorY {
			st.PeriodY -= PeriodStep
		}
	}
	if in.Right {
		s.Clear(bg)
		s.ScaleX += ScaleStep
		st.PeriodX += PeriodStep
	}
	if in.Left && s.ScaleX > MinScale {
		s.Clear(bg)
		s.ScaleX -= ScaleStep
		if st.PeriodX > PeriodFloorX {
			st.PeriodX -= PeriodStep
		}
	}
	if in.Reset {
		s.Clear(bg)
		s.ScaleX = plot.DefaultScale
		s.ScaleY = plot.DefaultScale
		st.PeriodX = ResetPeriodX
		st.PeriodY = ResetPeriodY
		return true
	}
	return false
}
