package plot

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var textFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// DrawText draws one line of text with its baseline on row y.
func (s *Surface) DrawText(x, y int, text string, c Color) {
	tinyfont.WriteLine(NewDisplay(s), textFont, clampInt16(x), clampInt16(y), text, c.ToRGBA())
}

// TextWidth returns the advance width of text in pixels.
func TextWidth(text string) int {
	_, outbox := tinyfont.LineWidth(textFont, text)
	return int(outbox)
}
