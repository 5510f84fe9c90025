package vmath

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestV2Basics verifies arithmetic helpers
func TestV2Basics(t *testing.T) {
	a, b := V2(3, 4), V2(1, -2)

	if got := V2Add(a, b); got != V2(4, 2) {
		t.Errorf("Expected (4,2), got %v", got)
	}
	if got := V2Sub(a, b); got != V2(2, 6) {
		t.Errorf("Expected (2,6), got %v", got)
	}
	if got := V2Scale(a, 2); got != V2(6, 8) {
		t.Errorf("Expected (6,8), got %v", got)
	}
	if got := V2Dot(a, b); got != -5 {
		t.Errorf("Expected -5, got %v", got)
	}
	if got := V2Mag(a); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := V2Dist(a, b); !near(got, math.Sqrt(40)) {
		t.Errorf("Expected sqrt(40), got %v", got)
	}
}

// TestV2FromAngleRotate verifies polar construction and rotation about a pivot
func TestV2FromAngleRotate(t *testing.T) {
	v := V2FromAngle(math.Pi/2, 8)
	if !near(v.X, 0) || !near(v.Y, 8) {
		t.Errorf("Expected (0,8), got %v", v)
	}

	r := V2Rotate(V2(2, 1), V2(1, 1), math.Pi)
	if !near(r.X, 0) || !near(r.Y, 1) {
		t.Errorf("Expected (0,1), got %v", r)
	}
}

// TestV2Finite verifies NaN and Inf detection
func TestV2Finite(t *testing.T) {
	if !V2Finite(V2(1, 2)) {
		t.Error("Expected finite vector")
	}
	if V2Finite(V2(math.NaN(), 0)) || V2Finite(V2(0, math.Inf(-1))) {
		t.Error("Expected non-finite vectors rejected")
	}
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.5) != 0.5 {
		t.Error("Expected Clamp01 to clamp into [0,1]")
	}
}
