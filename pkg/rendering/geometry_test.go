package rendering

import "testing"

func TestRectInset(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 100)

	shrunk := r.Inset(10, 5)
	want := Rect{Left: 10, Top: 5, Right: 90, Bottom: 95}
	if shrunk != want {
		t.Fatalf("Inset(10, 5) = %+v, want %+v", shrunk, want)
	}

	grown := r.Inset(-8, -8)
	want = Rect{Left: -8, Top: -8, Right: 108, Bottom: 108}
	if grown != want {
		t.Fatalf("Inset(-8, -8) = %+v, want %+v", grown, want)
	}
	if grown.Width() != 116 {
		t.Fatalf("grown width = %v, want 116", grown.Width())
	}
}

func TestRectCenterAndTranslate(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if c := r.Center(); c != (Offset{X: 25, Y: 40}) {
		t.Fatalf("center = %v, want (25, 40)", c)
	}
	moved := r.Translate(-10, 5)
	if moved != RectFromLTWH(0, 25, 30, 40) {
		t.Fatalf("translated = %+v", moved)
	}
}

func TestRectIntersectAndUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)

	if got := a.Intersect(b); got != RectFromLTWH(5, 5, 5, 5) {
		t.Fatalf("intersection = %+v", got)
	}
	if got := a.Union(b); got != RectFromLTWH(0, 0, 15, 15) {
		t.Fatalf("union = %+v", got)
	}

	far := RectFromLTWH(100, 100, 5, 5)
	if got := a.Intersect(far); !got.IsEmpty() {
		t.Fatalf("disjoint intersection = %+v, want empty", got)
	}
}

func TestRRectUniformRadius(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 50, 50), CircularRadius(7))
	if got := rr.UniformRadius(); got != 7 {
		t.Fatalf("uniform radius = %v, want 7", got)
	}

	rr.TopRight = Radius{X: 3, Y: 3}
	if got := rr.UniformRadius(); got != 0 {
		t.Fatalf("mixed radius = %v, want 0", got)
	}
}
