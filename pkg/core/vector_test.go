package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func vectorsClose(a, b Vector, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func TestVector_Arithmetic(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, 5, 6)

	if got := a.Add(b); got != NewVector(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVector(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVector(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}
	if got := a.Negate(); got != NewVector(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
}

func TestVector_Cross(t *testing.T) {
	x := NewVector(1, 0, 0)
	y := NewVector(0, 1, 0)

	if got := x.Cross(y); got != NewVector(0, 0, 1) {
		t.Errorf("Expected x × y = z, got %v", got)
	}
	if got := y.Cross(x); got != NewVector(0, 0, -1) {
		t.Errorf("Expected y × x = -z, got %v", got)
	}
}

func TestVector_Normalize(t *testing.T) {
	v := NewVector(3, 0, 4).Normalize()
	if !scalar.EqualWithinAbs(v.Length(), 1, 1e-12) {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !vectorsClose(v, NewVector(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6,0,0.8), got %v", v)
	}
}

func TestVector_NormalizeZeroIsNoOp(t *testing.T) {
	zero := Vector{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("Expected zero vector unchanged, got %v", got)
	}
}

func TestVector_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector
		rotation Vector
		expected Vector
	}{
		{"No rotation", NewVector(1, 0, 0), NewVector(0, 0, 0), NewVector(1, 0, 0)},
		{"90 degree rotation around Z axis", NewVector(1, 0, 0), NewVector(0, 0, math.Pi/2), NewVector(0, 1, 0)},
		{"90 degree rotation around Y axis", NewVector(1, 0, 0), NewVector(0, math.Pi/2, 0), NewVector(0, 0, -1)},
		{"90 degree rotation around X axis", NewVector(0, 1, 0), NewVector(math.Pi/2, 0, 0), NewVector(0, 0, 1)},
		{"Combined rotations", NewVector(1, 0, 0), NewVector(0, math.Pi/2, math.Pi/2), NewVector(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Rotate(tt.rotation)
			if !vectorsClose(result, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := NewPoint(1, 1, 1)
	q := NewPoint(4, 5, 1)

	if got := q.Subtract(p); got != NewVector(3, 4, 0) {
		t.Errorf("Point - Point: expected (3,4,0), got %v", got)
	}
	if got := p.Add(NewVector(1, 2, 3)); got != NewPoint(2, 3, 4) {
		t.Errorf("Point + Vector: expected (2,3,4), got %v", got)
	}
	if got := p.SubtractVector(NewVector(1, 2, 3)); got != NewPoint(0, -1, -2) {
		t.Errorf("Point - Vector: expected (0,-1,-2), got %v", got)
	}
}
