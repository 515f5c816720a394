package rendering

import (
	"math"
	"testing"
)

func offsetNear(a, b Offset) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Fatal("Identity() is not identity")
	}
	p := Offset{X: 3, Y: -7}
	if got := m.TransformPoint(p); got != p {
		t.Fatalf("identity transform moved point: %v -> %v", p, got)
	}
}

func TestMatrixTranslation(t *testing.T) {
	m := Translation(10, -5)
	got := m.TransformPoint(Offset{X: 1, Y: 2})
	want := Offset{X: 11, Y: -3}
	if !offsetNear(got, want) {
		t.Fatalf("translated point = %v, want %v", got, want)
	}
}

func TestMatrixRotationQuarterTurn(t *testing.T) {
	m := Rotation(math.Pi / 2)
	got := m.TransformPoint(Offset{X: 1, Y: 0})
	want := Offset{X: 0, Y: 1} // clockwise in y-down coordinates
	if !offsetNear(got, want) {
		t.Fatalf("rotated point = %v, want %v", got, want)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Multiply applies the right operand first.
	m := Translation(10, 0).Multiply(Scaling(2, 2))
	got := m.TransformPoint(Offset{X: 3, Y: 4})
	want := Offset{X: 16, Y: 8}
	if !offsetNear(got, want) {
		t.Fatalf("composed transform = %v, want %v", got, want)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translation(5, 7).Multiply(Rotation(0.3)).Multiply(Scaling(2, 3))
	inv := m.Invert()
	p := Offset{X: 11, Y: -4}
	got := inv.TransformPoint(m.TransformPoint(p))
	if !offsetNear(got, p) {
		t.Fatalf("invert round trip = %v, want %v", got, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Scaling(0, 0)
	if got := m.Invert(); !got.IsIdentity() {
		t.Fatalf("singular inverse = %+v, want identity", got)
	}
}
