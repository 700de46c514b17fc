package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"right edge exclusive", 6, 3, false},
		{"bottom edge exclusive", 2, 8, false},
		{"left of rect", 1, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestDirectionCollinear(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Direction
		expected bool
	}{
		{"same horizontal", DirRight, DirRight, true},
		{"reversed horizontal", DirRight, DirLeft, true},
		{"reversed vertical", DirUp, DirDown, true},
		{"perpendicular", DirUp, DirLeft, false},
		{"perpendicular reversed", DirRight, DirDown, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Collinear(tc.b); got != tc.expected {
				t.Errorf("%v.Collinear(%v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	if DirUp.Opposite() != DirDown {
		t.Errorf("Up.Opposite() = %v, expected down", DirUp.Opposite())
	}
	if DirLeft.Opposite() != DirRight {
		t.Errorf("Left.Opposite() = %v, expected right", DirLeft.Opposite())
	}
}

func TestPointIn(t *testing.T) {
	if !(Point{0, 0}).In(20, 20) {
		t.Error("origin should be inside grid")
	}
	if (Point{20, 5}).In(20, 20) {
		t.Error("x == width should be outside grid")
	}
	if (Point{5, -1}).In(20, 20) {
		t.Error("negative y should be outside grid")
	}
	if got := (Point{5, 5}).Add(DirRight); got != (Point{6, 5}) {
		t.Errorf("Add(right) = %v, expected {6 5}", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
		{3, 0, -2, 0}, // inverted range, lower bound wins
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
