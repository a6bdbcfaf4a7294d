package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 16, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 15, 2, true},
		{"right edge (exclusive)", 16, 1, false},
		{"bottom edge (exclusive)", 4, 3, false},
		{"negative x", -1, 1, false},
		{"negative y", 3, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
			if Pt(tc.x, tc.y).In(r) != tc.expected {
				t.Errorf("Pt(%d, %d).In() disagrees with Contains", tc.x, tc.y)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestPointAdd(t *testing.T) {
	p := Pt(8, 1).Add(-1, 0)
	if p != Pt(7, 1) {
		t.Errorf("Add(-1, 0) = %+v, expected (7, 1)", p)
	}
	p = p.Add(0, -1)
	if p != Pt(7, 0) {
		t.Errorf("Add(0, -1) = %+v, expected (7, 0)", p)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 15, 5},   // within range
		{-1, 0, 15, 0},  // below min
		{16, 0, 15, 15}, // above max
		{0, 0, 15, 0},   // at min
		{15, 0, 15, 15}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
