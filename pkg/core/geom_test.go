package core

import "testing"

func TestWrapHandlesNegativeAndLargeCoordinates(t *testing.T) {
	cases := []struct{ c, dim, want int }{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{12, 5, 2},
		{-1, 1, 0},
		{7, 1, 0},
	}
	for _, tc := range cases {
		if got := Wrap(tc.c, tc.dim); got != tc.want {
			t.Fatalf("Wrap(%d, %d) = %d, expected %d", tc.c, tc.dim, got, tc.want)
		}
	}
}

func TestSizeWrapAndContains(t *testing.T) {
	s := Size{W: 4, H: 3}
	if got := s.Wrap(Point{X: -1, Y: -1}); got != (Point{X: 3, Y: 2}) {
		t.Fatalf("unexpected wrap of (-1,-1): %+v", got)
	}
	if got := s.Wrap(Point{X: 4, Y: 3}); got != (Point{}) {
		t.Fatalf("unexpected wrap of (4,3): %+v", got)
	}
	if !s.Contains(Point{X: 3, Y: 2}) {
		t.Fatal("(3,2) should be inside a 4x3 grid")
	}
	if s.Contains(Point{X: 4, Y: 0}) || s.Contains(Point{X: 0, Y: -1}) {
		t.Fatal("coordinates outside the grid reported as contained")
	}
	if s.Area() != 12 {
		t.Fatalf("area = %d, expected 12", s.Area())
	}
}

func TestNeighborhoodExcludesOrigin(t *testing.T) {
	seen := map[Point]bool{}
	for _, d := range Neighborhood {
		if d == (Point{}) {
			t.Fatal("neighborhood must not contain the origin")
		}
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Fatalf("offset %+v outside the Moore neighborhood", d)
		}
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct offsets, got %d", len(seen))
	}
}
