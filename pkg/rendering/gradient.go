package rendering

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// TileMode describes how a gradient behaves outside its defined range.
type TileMode int

const (
	// TileModeClamp holds the nearest stop's color beyond the gradient ends.
	TileModeClamp TileMode = iota
	// TileModeRepeat repeats the gradient beyond its ends.
	TileModeRepeat
	// TileModeMirror repeats the gradient mirrored beyond its ends.
	TileModeMirror
)

// String returns a human-readable representation of the tile mode.
func (m TileMode) String() string {
	switch m {
	case TileModeClamp:
		return "clamp"
	case TileModeRepeat:
		return "repeat"
	case TileModeMirror:
		return "mirror"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// Gradient describes a linear or radial gradient.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
	Radial RadialGradient
	Tile   TileMode
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop, tile TileMode) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
		Tile: tile,
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop, tile TileMode) *Gradient {
	return &Gradient{
		Type: GradientTypeRadial,
		Radial: RadialGradient{
			Center: center,
			Radius: radius,
			Stops:  cloneGradientStops(stops),
		},
		Tile: tile,
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear || g.Type == GradientTypeRadial
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}

// ColorAt returns the gradient color at normalized position t.
// Positions outside [0, 1] are resolved per the tile mode.
// Stops must be ordered by position; equal positions produce a hard
// transition where the later stop wins beyond that position.
func (g *Gradient) ColorAt(t float64) Color {
	stops := g.Stops()
	if len(stops) == 0 {
		return ColorTransparent
	}
	t = g.tile(t)
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		if span <= 0 {
			return hi.Color
		}
		return lo.Color.Lerp(hi.Color, (t-lo.Position)/span)
	}
	return last.Color
}

// ColorAtPoint evaluates the gradient at a point in the gradient's own
// coordinate space. Used by software rasterization.
func (g *Gradient) ColorAtPoint(p Offset) Color {
	switch g.Type {
	case GradientTypeLinear:
		lg := g.Linear
		dx := lg.End.X - lg.Start.X
		dy := lg.End.Y - lg.Start.Y
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return g.ColorAt(0)
		}
		t := ((p.X-lg.Start.X)*dx + (p.Y-lg.Start.Y)*dy) / lenSq
		return g.ColorAt(t)
	case GradientTypeRadial:
		rg := g.Radial
		if rg.Radius <= 0 {
			return g.ColorAt(0)
		}
		dx := p.X - rg.Center.X
		dy := p.Y - rg.Center.Y
		return g.ColorAt(math.Hypot(dx, dy) / rg.Radius)
	default:
		return ColorTransparent
	}
}

// tile maps t into [0, 1] according to the gradient's tile mode.
func (g *Gradient) tile(t float64) float64 {
	switch g.Tile {
	case TileModeRepeat:
		t = t - math.Floor(t)
	case TileModeMirror:
		t = math.Abs(t)
		period := math.Mod(t, 2)
		if period > 1 {
			t = 2 - period
		} else {
			t = period
		}
	default: // TileModeClamp
		t = math.Max(0, math.Min(1, t))
	}
	return t
}

// Bounds returns the rectangle needed to fully render the gradient,
// expanded from widgetRect as needed. The result is the union of widgetRect
// and the gradient's natural bounds, ensuring it never shrinks widgetRect.
//
// For radial gradients, the natural bounds are a square centered on the
// gradient center with sides equal to twice the radius.
//
// For linear gradients, the natural bounds span from the start to end points.
func (g *Gradient) Bounds(widgetRect Rect) Rect {
	if g == nil || !g.IsValid() {
		return widgetRect
	}
	var gradientRect Rect
	switch g.Type {
	case GradientTypeRadial:
		c, r := g.Radial.Center, g.Radial.Radius
		if r <= 0 {
			return widgetRect
		}
		gradientRect = RectFromLTWH(c.X-r, c.Y-r, r*2, r*2)
	case GradientTypeLinear:
		s, e := g.Linear.Start, g.Linear.End
		gradientRect = Rect{
			Left:   math.Min(s.X, e.X),
			Top:    math.Min(s.Y, e.Y),
			Right:  math.Max(s.X, e.X),
			Bottom: math.Max(s.Y, e.Y),
		}
	default:
		return widgetRect
	}
	return widgetRect.Union(gradientRect)
}
