package hal

import (
	"fmt"
	"strings"
)

// scriptKeyboard replays one KeyState per tick and reports no keys once the script runs out.
type scriptKeyboard struct {
	script []KeyState
	tick   int
}

func (k *scriptKeyboard) State() KeyState {
	if k.tick < len(k.script) {
		return k.script[k.tick]
	}
	return 0
}

func (k *scriptKeyboard) advance() { k.tick++ }

var keyNames = map[string]KeyCode{
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"esc":    KeyEscape,
	"escape": KeyEscape,
	"r":      KeyR,
}

// ParseKeys parses a headless key script. Ticks are separated by commas and keys held together
// within a tick by '+'; an empty entry is a tick with no keys. Example: "up,up,,left+down,esc".
func ParseKeys(s string) ([]KeyState, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]KeyState, 0, len(parts))
	for i, part := range parts {
		var st KeyState
		for _, name := range strings.Split(part, "+") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			code, ok := keyNames[name]
			if !ok {
				return nil, fmt.Errorf("key script: tick %d: unknown key %q", i, name)
			}
			st = st.With(code)
		}
		out = append(out, st)
	}
	return out, nil
}
