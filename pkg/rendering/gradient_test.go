package rendering

import (
	"math"
	"testing"
)

func twoStopGradient() *Gradient {
	return NewLinearGradient(
		Offset{X: 0, Y: 0},
		Offset{X: 100, Y: 0},
		[]GradientStop{
			{Position: 0, Color: ColorBlack},
			{Position: 1, Color: ColorWhite},
		},
		TileModeClamp,
	)
}

func TestGradientColorAtEndpoints(t *testing.T) {
	g := twoStopGradient()
	if got := g.ColorAt(0); got != ColorBlack {
		t.Fatalf("ColorAt(0) = %08X, want black", uint32(got))
	}
	if got := g.ColorAt(1); got != ColorWhite {
		t.Fatalf("ColorAt(1) = %08X, want white", uint32(got))
	}
}

func TestGradientColorAtInterpolates(t *testing.T) {
	g := NewLinearGradient(
		Offset{}, Offset{X: 1, Y: 0},
		[]GradientStop{
			{Position: 0, Color: RGBA(0, 0, 0, 0)},
			{Position: 1, Color: RGBA(0, 0, 0, 200)},
		},
		TileModeClamp,
	)
	got := g.ColorAt(0.5).Alpha()
	if got != 100 {
		t.Fatalf("midpoint alpha = %d, want 100", got)
	}
}

func TestGradientColorAtClamps(t *testing.T) {
	g := twoStopGradient()
	if got := g.ColorAt(-3); got != ColorBlack {
		t.Fatalf("ColorAt(-3) = %08X, want clamped black", uint32(got))
	}
	if got := g.ColorAt(7); got != ColorWhite {
		t.Fatalf("ColorAt(7) = %08X, want clamped white", uint32(got))
	}
}

func TestGradientHardStop(t *testing.T) {
	g := NewLinearGradient(
		Offset{}, Offset{X: 1, Y: 0},
		[]GradientStop{
			{Position: 0, Color: ColorBlack},
			{Position: 0.5, Color: ColorRed},
			{Position: 0.5, Color: ColorBlue},
			{Position: 1, Color: ColorBlue},
		},
		TileModeClamp,
	)
	if got := g.ColorAt(0.75); got != ColorBlue {
		t.Fatalf("after hard stop = %08X, want blue", uint32(got))
	}
}

func TestGradientColorAtPointLinear(t *testing.T) {
	g := twoStopGradient()
	if got := g.ColorAtPoint(Offset{X: 0, Y: 50}); got != ColorBlack {
		t.Fatalf("point at start = %08X, want black", uint32(got))
	}
	if got := g.ColorAtPoint(Offset{X: 100, Y: -20}); got != ColorWhite {
		t.Fatalf("point at end = %08X, want white", uint32(got))
	}
	// Perpendicular offset must not affect the projected position.
	mid := g.ColorAtPoint(Offset{X: 50, Y: 999})
	if mid == ColorBlack || mid == ColorWhite {
		t.Fatalf("midpoint color = %08X, want intermediate gray", uint32(mid))
	}
}

func TestGradientColorAtPointRadial(t *testing.T) {
	g := NewRadialGradient(
		Offset{X: 50, Y: 50}, 50,
		[]GradientStop{
			{Position: 0, Color: ColorWhite},
			{Position: 1, Color: ColorBlack},
		},
		TileModeClamp,
	)
	if got := g.ColorAtPoint(Offset{X: 50, Y: 50}); got != ColorWhite {
		t.Fatalf("center color = %08X, want white", uint32(got))
	}
	if got := g.ColorAtPoint(Offset{X: 50, Y: 150}); got != ColorBlack {
		t.Fatalf("beyond radius = %08X, want clamped black", uint32(got))
	}
	onEdge := g.ColorAtPoint(Offset{X: 50 + 50/math.Sqrt2, Y: 50 + 50/math.Sqrt2})
	if onEdge != ColorBlack {
		t.Fatalf("edge color = %08X, want black", uint32(onEdge))
	}
}

func TestGradientIsValid(t *testing.T) {
	if (&Gradient{}).IsValid() {
		t.Fatal("zero gradient reported valid")
	}
	var nilGradient *Gradient
	if nilGradient.IsValid() {
		t.Fatal("nil gradient reported valid")
	}
	if !twoStopGradient().IsValid() {
		t.Fatal("two-stop linear gradient reported invalid")
	}
	bad := NewRadialGradient(Offset{}, 0, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	}, TileModeClamp)
	if bad.IsValid() {
		t.Fatal("zero-radius radial gradient reported valid")
	}
}

func TestGradientStopsCloned(t *testing.T) {
	stops := []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	}
	g := NewLinearGradient(Offset{}, Offset{X: 1}, stops, TileModeClamp)
	stops[0].Color = ColorRed
	if g.Linear.Stops[0].Color != ColorBlack {
		t.Fatal("gradient shares caller's stop slice")
	}
}

func TestGradientTileRepeatAndMirror(t *testing.T) {
	g := twoStopGradient()
	g.Tile = TileModeRepeat
	if got := g.ColorAt(1.25); got != g.ColorAt(0.25) {
		t.Fatalf("repeat tile: ColorAt(1.25) = %08X, want ColorAt(0.25) = %08X", uint32(got), uint32(g.ColorAt(0.25)))
	}
	g.Tile = TileModeMirror
	if got := g.ColorAt(1.25); got != g.ColorAt(0.75) {
		t.Fatalf("mirror tile: ColorAt(1.25) = %08X, want ColorAt(0.75) = %08X", uint32(got), uint32(g.ColorAt(0.75)))
	}
}
