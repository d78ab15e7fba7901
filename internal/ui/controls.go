package ui

// Control pairs a key with what it does.
type Control struct {
	Key    string
	Action string
}

// PausedControls lists the bindings available while editing.
var PausedControls = []Control{
	{"space", "play / pause"},
	{"click", "toggle cell (drag to paint)"},
	{"left/right", "smaller / larger cells"},
	{"r", "random board"},
	{"x", "clear board"},
	{"s", "save board"},
	{"l", "load board"},
	{"g", "toggle grid"},
	{"h", "toggle this help"},
	{"esc", "quit"},
}

// PlayingControls lists the bindings available while the board runs.
var PlayingControls = []Control{
	{"space", "pause"},
	{"click", "toggle cell"},
	{"up/down", "faster / slower"},
	{"x", "clear and pause"},
	{"g", "toggle grid"},
	{"esc", "quit"},
}

// helpLines formats controls into aligned lines.
func helpLines(title string, controls []Control) []string {
	keyWidth := 0
	for _, c := range controls {
		if len(c.Key) > keyWidth {
			keyWidth = len(c.Key)
		}
	}
	lines := make([]string, 0, len(controls)+2)
	lines = append(lines, title, "")
	for _, c := range controls {
		pad := keyWidth - len(c.Key)
		line := c.Key
		for i := 0; i < pad+2; i++ {
			line += " "
		}
		lines = append(lines, line+c.Action)
	}
	return lines
}
