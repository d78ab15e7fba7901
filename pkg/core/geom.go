package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a single cell.
type Point struct {
	X int
	Y int
}

// Neighborhood lists the eight Moore offsets around a cell.
var Neighborhood = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Wrap returns c modulo dim in the range [0, dim), also for negative c.
// dim must be positive.
func Wrap(c, dim int) int {
	return (c%dim + dim) % dim
}

// Area returns the number of cells in the grid.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether p lies inside the grid.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Wrap applies toroidal wrapping to p.
func (s Size) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, s.W), Y: Wrap(p.Y, s.H)}
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }
