package core

import "testing"

func TestCadenceFiresEveryTimestepFrames(t *testing.T) {
	c := NewCadence(3)
	var fired []int
	for frame := 1; frame <= 9; frame++ {
		if c.Tick() {
			fired = append(fired, frame)
		}
	}
	if len(fired) != 3 || fired[0] != 3 || fired[1] != 6 || fired[2] != 9 {
		t.Fatalf("unexpected firing frames %v", fired)
	}
}

func TestCadenceTimestepOfOneFiresEveryFrame(t *testing.T) {
	c := NewCadence(0)
	if c.Timestep() != 1 {
		t.Fatalf("timestep clamped to %d, expected 1", c.Timestep())
	}
	for i := 0; i < 4; i++ {
		if !c.Tick() {
			t.Fatalf("tick %d did not fire", i)
		}
	}
}

func TestCadenceFasterAndSlower(t *testing.T) {
	c := NewCadence(30)
	c.Faster()
	if c.Timestep() != 20 {
		t.Fatalf("faster from 30 gave %d, expected 20", c.Timestep())
	}
	c.SetTimestep(3)
	c.Faster()
	if c.Timestep() != 2 {
		t.Fatalf("faster from 3 gave %d, expected 2", c.Timestep())
	}
	c.Faster()
	if c.Timestep() != 2 {
		t.Fatalf("faster must stop at 2, got %d", c.Timestep())
	}

	c.SetTimestep(30)
	c.Slower()
	if c.Timestep() != 40 {
		t.Fatalf("slower from 30 gave %d, expected 40", c.Timestep())
	}
	c.SetTimestep(1)
	c.Slower()
	if c.Timestep() != 2 {
		t.Fatalf("slower from 1 gave %d, expected 2", c.Timestep())
	}
}
