package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 1100, H: 650},
			b:        Box{X: 500, Y: 300, W: 20, H: 20},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}

			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestCheckBound(t *testing.T) {
	tests := []struct {
		name       string
		box        Box
		horizontal bool
		vertical   bool
	}{
		{"inside", Box{X: 10, Y: 10, W: 20, H: 20}, true, true},
		{"flush with edges", Box{X: 0, Y: 0, W: 100, H: 50}, true, true},
		{"left overflow", Box{X: -1, Y: 10, W: 20, H: 20}, false, true},
		{"right overflow", Box{X: 90, Y: 10, W: 20, H: 20}, false, true},
		{"top overflow", Box{X: 10, Y: -0.5, W: 20, H: 20}, true, false},
		{"bottom overflow", Box{X: 10, Y: 40, W: 20, H: 20}, true, false},
		{"corner overflow", Box{X: -5, Y: -5, W: 20, H: 20}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, v := CheckBound(tc.box, 100, 50)
			if h != tc.horizontal || v != tc.vertical {
				t.Errorf("CheckBound() = (%v, %v), expected (%v, %v)", h, v, tc.horizontal, tc.vertical)
			}
			if InBounds(tc.box, 100, 50) != (tc.horizontal && tc.vertical) {
				t.Errorf("InBounds() disagrees with CheckBound()")
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	org := BoxAt(Vec{X: 0, Y: 0}, 10, 10)

	dir := Orientation(org, BoxAt(Vec{X: 3, Y: 4}, 10, 10))
	if math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y-0.8) > 1e-9 {
		t.Errorf("Orientation() = %+v, expected (0.6, 0.8)", dir)
	}
	if math.Abs(dir.Len()-1) > 1e-9 {
		t.Errorf("Orientation() length = %f, expected 1", dir.Len())
	}

	// Coincident centres must not divide by zero
	dir = Orientation(org, org)
	if dir != (Vec{X: 0, Y: 1}) {
		t.Errorf("Orientation() for coincident centres = %+v, expected (0, 1)", dir)
	}
}

func TestClampInto(t *testing.T) {
	b := ClampInto(Box{X: -10, Y: 640, W: 60, H: 60}, 1100, 650)
	if b.X != 0 || b.Y != 590 {
		t.Errorf("ClampInto() = (%f, %f), expected (0, 590)", b.X, b.Y)
	}
	if !InBounds(b, 1100, 650) {
		t.Error("ClampInto() result should be in bounds")
	}
}

func TestRotatedExtent(t *testing.T) {
	w, h := RotatedExtent(40, 12, 0)
	if math.Abs(w-40) > 1e-9 || math.Abs(h-12) > 1e-9 {
		t.Errorf("RotatedExtent(0°) = (%f, %f), expected (40, 12)", w, h)
	}
	w, h = RotatedExtent(40, 12, 90)
	if math.Abs(w-12) > 1e-9 || math.Abs(h-40) > 1e-9 {
		t.Errorf("RotatedExtent(90°) = (%f, %f), expected (12, 40)", w, h)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
