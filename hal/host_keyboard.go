//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeyboard samples held keys once per frame from the window backend.
type hostKeyboard struct {
	state KeyState
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) State() KeyState { return k.state }

var hostKeyMap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyR, KeyR},
}

func (k *hostKeyboard) poll() {
	var s KeyState
	for _, m := range hostKeyMap {
		if ebiten.IsKeyPressed(m.key) {
			s = s.With(m.code)
		}
	}
	k.state = s
}
