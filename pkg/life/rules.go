package life

import "life-torus/pkg/core"

// Fate is the state a cell takes in the next generation.
type Fate uint8

const (
	Dead Fate = iota
	Alive
)

func (f Fate) String() string {
	if f == Alive {
		return "alive"
	}
	return "dead"
}

// CountNeighbors counts the live cells among the eight toroidal neighbours of
// (x, y). Counting stops once the total exceeds three, so a result of 4 means
// "four or more".
func CountNeighbors(b *Board, x, y int) int {
	p := core.Point{X: x, Y: y}
	n := 0
	for _, d := range core.Neighborhood {
		if _, ok := b.live[b.size.Wrap(p.Add(d))]; ok {
			n++
			if n > 3 {
				return n
			}
		}
	}
	return n
}

// Decide applies the B3/S23 rule to (x, y).
func Decide(b *Board, x, y int) Fate {
	n := CountNeighbors(b, x, y)
	if b.IsAlive(x, y) {
		if n == 2 || n == 3 {
			return Alive
		}
		return Dead
	}
	if n == 3 {
		return Alive
	}
	return Dead
}

// Step advances the board by one generation. Only live cells and their
// neighbours are evaluated; any other cell is dead with no live neighbours
// and stays dead.
func (b *Board) Step() {
	candidates := make(map[core.Point]struct{}, len(b.live)*9)
	for p := range b.live {
		candidates[p] = struct{}{}
		for _, d := range core.Neighborhood {
			candidates[b.size.Wrap(p.Add(d))] = struct{}{}
		}
	}

	next := make(map[core.Point]struct{}, len(b.live))
	for p := range candidates {
		if Decide(b, p.X, p.Y) == Alive {
			next[p] = struct{}{}
		}
	}
	b.live = next
	b.gen++
}
