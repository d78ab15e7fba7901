package life

import "life-torus/pkg/core"

// Density is one of the fixed population levels used by RandomFill.
type Density int

const (
	Half    Density = 2
	Third   Density = 3
	Quarter Density = 4
)

// Densities lists the profiles RandomFill chooses between.
var Densities = [...]Density{Half, Third, Quarter}

// Denominator returns n for a density of 1 in n.
func (d Density) Denominator() int { return int(d) }

// Fraction returns the expected share of live cells.
func (d Density) Fraction() float64 { return 1 / float64(d) }

func (d Density) String() string {
	switch d {
	case Half:
		return "1/2"
	case Third:
		return "1/3"
	case Quarter:
		return "1/4"
	}
	return "unknown"
}

// RandomFill replaces the board contents with a random population. One of the
// three densities is picked uniformly, then every cell is independently made
// live with that probability. The chosen density is returned.
func (b *Board) RandomFill(r *core.RNG) Density {
	d := Densities[r.IntN(len(Densities))]
	b.Clear()
	n := d.Denominator()
	for y := 0; y < b.size.H; y++ {
		for x := 0; x < b.size.W; x++ {
			if r.OneIn(n) {
				b.live[core.Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return d
}
