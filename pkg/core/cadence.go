package core

// Cadence counts frames and fires once every Timestep frames. It mirrors a
// render loop running at a fixed refresh rate where the simulation advances
// more slowly than the screen repaints.
type Cadence struct {
	timestep int
	frame    int
}

// NewCadence constructs a Cadence firing every timestep frames.
func NewCadence(timestep int) *Cadence {
	c := &Cadence{}
	c.SetTimestep(timestep)
	return c
}

// SetTimestep changes the number of frames between firings and restarts the
// frame count.
func (c *Cadence) SetTimestep(timestep int) {
	if timestep < 1 {
		timestep = 1
	}
	c.timestep = timestep
	c.frame = 0
}

// Timestep returns the current number of frames between firings.
func (c *Cadence) Timestep() int { return c.timestep }

// Tick advances one frame and reports whether the simulation should step.
func (c *Cadence) Tick() bool {
	c.frame = (c.frame + 1) % c.timestep
	return c.frame == 0
}

// Faster shortens the timestep by a third, never going below 2 frames by
// this route.
func (c *Cadence) Faster() {
	if c.timestep > 2 {
		c.timestep -= c.timestep / 3
	}
	if c.frame >= c.timestep {
		c.frame = 0
	}
}

// Slower lengthens the timestep by a third, rounded up.
func (c *Cadence) Slower() {
	c.timestep += (c.timestep + 2) / 3
}
