package core

import "testing"

func TestBoxContainsStrict(t *testing.T) {
	b := NewBox(Vec2{X: 0, Y: 0}, 128, 576)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", Vec2{0, 0}, true},
		{"inside near right edge", Vec2{63, 0}, true},
		{"right edge (exclusive)", Vec2{64, 0}, false},
		{"outside right", Vec2{65, 0}, false},
		{"inside near top edge", Vec2{0, 287.9}, true},
		{"top edge (exclusive)", Vec2{0, 288}, false},
		{"outside bottom", Vec2{0, -300}, false},
		{"outside corner", Vec2{-70, 290}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsStrict(tc.p); got != tc.expected {
				t.Errorf("ContainsStrict(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(Vec2{X: 10, Y: -4}, 20, 8)

	if b.Left() != 0 || b.Right() != 20 {
		t.Errorf("horizontal edges = (%f, %f), expected (0, 20)", b.Left(), b.Right())
	}
	if b.Bottom() != -8 || b.Top() != 0 {
		t.Errorf("vertical edges = (%f, %f), expected (-8, 0)", b.Bottom(), b.Top())
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -5}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -3}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 7}) {
		t.Errorf("Sub() = %v", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-90, -90, 90, -90},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
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
