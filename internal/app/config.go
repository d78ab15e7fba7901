package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
)

// Palette holds the colour names accepted in configuration.
var Palette = map[string]color.RGBA{
	"black":      {R: 0, G: 0, B: 0, A: 255},
	"white":      {R: 255, G: 255, B: 255, A: 255},
	"light_grey": {R: 180, G: 180, B: 180, A: 255},
	"red":        {R: 255, G: 0, B: 0, A: 255},
	"green":      {R: 0, G: 255, B: 0, A: 255},
	"blue":       {R: 0, G: 0, B: 255, A: 255},
	"purple":     {R: 170, G: 0, B: 255, A: 255},
	"yellow":     {R: 255, G: 255, B: 0, A: 255},
	"dark_red":   {R: 100, G: 0, B: 0, A: 255},
	"dark_green": {R: 0, G: 100, B: 0, A: 255},
	"dark_blue":  {R: 0, G: 0, B: 150, A: 255},
	"grey":       {R: 130, G: 130, B: 130, A: 255},
	"dark_grey":  {R: 60, G: 60, B: 60, A: 255},
}

// Colour looks up a palette entry by name.
func Colour(name string) (color.RGBA, error) {
	c, ok := Palette[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}

// Config represents the presentation settings for the application. None of
// it is part of the board itself.
type Config struct {
	ConfigPath string
	SavePath   string
	Seed       int64

	Width    int
	Height   int
	Dot      int
	Timestep int
	ShowGrid bool
	ShowHelp bool

	RefreshRate int
	KeyRepeatMS int

	DotColour  string
	BgColour   string
	GridColour string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ConfigPath:  "config.json",
		SavePath:    "board.sav",
		Width:       600,
		Height:      400,
		Dot:         10,
		Timestep:    30,
		ShowGrid:    true,
		ShowHelp:    true,
		RefreshRate: 60,
		KeyRepeatMS: 50,
		DotColour:   "black",
		BgColour:    "white",
		GridColour:  "light_grey",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON settings file (missing file means defaults)")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "board file used by save and load")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards (0 uses the clock)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Dot, "dot", c.Dot, "cell size in pixels")
	fs.IntVar(&c.Timestep, "timestep", c.Timestep, "frames between generations")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines")
	fs.BoolVar(&c.ShowHelp, "help-overlay", c.ShowHelp, "show the controls at launch")
	fs.IntVar(&c.RefreshRate, "tps", c.RefreshRate, "frames per second")
	fs.IntVar(&c.KeyRepeatMS, "key-repeat", c.KeyRepeatMS, "key repeat interval in milliseconds")
	fs.StringVar(&c.DotColour, "dot-colour", c.DotColour, "live cell colour")
	fs.StringVar(&c.BgColour, "bg-colour", c.BgColour, "background colour")
	fs.StringVar(&c.GridColour, "grid-colour", c.GridColour, "grid line colour")
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"dot", c.Dot},
		{"timestep", c.Timestep},
		{"refresh rate", c.RefreshRate},
		{"key repeat", c.KeyRepeatMS},
	}
	for _, p := range positive {
		if p.value < 1 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}
	for _, name := range []string{c.DotColour, c.BgColour, c.GridColour} {
		if _, err := Colour(name); err != nil {
			return err
		}
	}
	return nil
}

// fileConfig mirrors the keys of the JSON settings file. Absent keys keep
// their current value.
type fileConfig struct {
	XResolution       *int      `json:"x_resolution"`
	YResolution       *int      `json:"y_resolution"`
	PixelSize         *int      `json:"pixel_size"`
	DefaultTimestep   *int      `json:"default_timestep"`
	DefaultShowGrid   *flexBool `json:"default_show_grid"`
	ShowControls      *flexBool `json:"show_controls_at_launch"`
	RefreshRate       *int      `json:"screen_refresh_rate"`
	KeyRepeatInterval *int      `json:"key_repeat_interval"`
	DotColour         *string   `json:"dot_colour"`
	BgColour          *string   `json:"bg_colour"`
	GridColour        *string   `json:"grid_colour"`
}

// flexBool accepts JSON booleans as well as numbers, where non-zero is true.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*b = flexBool(t)
	case float64:
		*b = t != 0
	default:
		return fmt.Errorf("expected boolean or number, got %s", data)
	}
	return nil
}

// LoadFile merges settings from the JSON file at path. A missing file is not
// an error. On any other error c is left unchanged.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	next := *c
	setInt(&next.Width, fc.XResolution)
	setInt(&next.Height, fc.YResolution)
	setInt(&next.Dot, fc.PixelSize)
	setInt(&next.Timestep, fc.DefaultTimestep)
	setInt(&next.RefreshRate, fc.RefreshRate)
	setInt(&next.KeyRepeatMS, fc.KeyRepeatInterval)
	if fc.DefaultShowGrid != nil {
		next.ShowGrid = bool(*fc.DefaultShowGrid)
	}
	if fc.ShowControls != nil {
		next.ShowHelp = bool(*fc.ShowControls)
	}
	if fc.DotColour != nil {
		next.DotColour = *fc.DotColour
	}
	if fc.BgColour != nil {
		next.BgColour = *fc.BgColour
	}
	if fc.GridColour != nil {
		next.GridColour = *fc.GridColour
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	*c = next
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// KeyRepeatFrames converts the key repeat setting into frames: the delay
// before a held key starts repeating and the interval between repeats.
func (c *Config) KeyRepeatFrames() (delay, interval int) {
	delay = c.RefreshRate / 3
	interval = c.RefreshRate * c.KeyRepeatMS / 1000
	if interval < 1 {
		interval = 1
	}
	return delay, interval
}

// Theme holds the drawing colours and key repeat timing the window needs.
type Theme struct {
	Dot        color.RGBA
	Background color.RGBA
	Grid       color.RGBA

	RepeatDelay    int
	RepeatInterval int
}

// ResolveTheme looks up the configured colour names and converts the key
// repeat setting into frames.
func (c *Config) ResolveTheme() (Theme, error) {
	var th Theme
	var err error
	if th.Dot, err = Colour(c.DotColour); err != nil {
		return Theme{}, fmt.Errorf("dot colour: %w", err)
	}
	if th.Background, err = Colour(c.BgColour); err != nil {
		return Theme{}, fmt.Errorf("background colour: %w", err)
	}
	if th.Grid, err = Colour(c.GridColour); err != nil {
		return Theme{}, fmt.Errorf("grid colour: %w", err)
	}
	th.RepeatDelay, th.RepeatInterval = c.KeyRepeatFrames()
	return th, nil
}

// repeatDue reports whether a key held for the given number of frames should
// fire this frame.
func repeatDue(frames, delay, interval int) bool {
	if frames == 1 {
		return true
	}
	if frames <= delay || interval < 1 {
		return false
	}
	return (frames-delay)%interval == 0
}
