package core

import (
	"math"
	"testing"
)

func TestFromDegrees(t *testing.T) {
	tests := []struct {
		name   string
		deg    float64
		wantX  float64
		wantY  float64
	}{
		{"zero is +X", 0, 1, 0},
		{"90 is +Y", 90, 0, 1},
		{"180 is -X", 180, -1, 0},
		{"270 is -Y", 270, 0, -1},
		{"45 diagonal", 45, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{"negative 90 is -Y", -90, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FromDegrees(tc.deg)
			if !closeTo(v.X, tc.wantX) || !closeTo(v.Y, tc.wantY) {
				t.Errorf("FromDegrees(%v) = (%v, %v), expected (%v, %v)",
					tc.deg, v.X, v.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestVec2Rotate(t *testing.T) {
	v := NewVec2(1, 0)

	r := v.Rotate(90)
	if !closeTo(r.X, 0) || !closeTo(r.Y, 1) {
		t.Errorf("Rotate(90) = (%v, %v), expected (0, 1)", r.X, r.Y)
	}

	r = v.Rotate(-90)
	if !closeTo(r.X, 0) || !closeTo(r.Y, -1) {
		t.Errorf("Rotate(-90) = (%v, %v), expected (0, -1)", r.X, r.Y)
	}

	// Rotation preserves length
	long := NewVec2(3, 4)
	if !closeTo(long.Rotate(37).Len(), 5) {
		t.Error("Rotate should preserve vector length")
	}
}

func TestVec2Normalize(t *testing.T) {
	v := NewVec2(3, 4).Normalize()
	if !closeTo(v.Len(), 1) {
		t.Errorf("Normalize length = %v, expected 1", v.Len())
	}
	if !closeTo(v.X, 0.6) || !closeTo(v.Y, 0.8) {
		t.Errorf("Normalize = (%v, %v), expected (0.6, 0.8)", v.X, v.Y)
	}

	// Zero vector falls back to +X so callers always get a valid aim
	zero := Vec2{}.Normalize()
	if zero.X != 1 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to (1, 0), got (%v, %v)", zero.X, zero.Y)
	}
}

func TestVec2AngleDegrees(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{NewVec2(1, 0), 0},
		{NewVec2(0, 1), 90},
		{NewVec2(-1, 0), 180},
		{NewVec2(0, -1), -90},
	}

	for _, tc := range tests {
		got := tc.v.AngleDegrees()
		if !closeTo(got, tc.want) {
			t.Errorf("AngleDegrees(%v) = %v, expected %v", tc.v, got, tc.want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -1)

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 1 {
		t.Errorf("Add = %v, expected (4, 1)", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 3 {
		t.Errorf("Sub = %v, expected (-2, 3)", diff)
	}

	scaled := a.Scale(2.5)
	if scaled.X != 2.5 || scaled.Y != 5 {
		t.Errorf("Scale = %v, expected (2.5, 5)", scaled)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
