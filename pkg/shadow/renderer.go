// Package shadow draws approximate drop shadows for rounded-rectangle
// shapes by painting gradient-filled geometry beneath a shape at a
// given elevation. Straight edges get a linear-gradient strip; corners
// get a radial-gradient arc.
package shadow

import (
	"fmt"

	"github.com/go-drift/shade/pkg/rendering"
)

// Gradient alpha levels applied to the base shadow color.
const (
	// alphaStart evaluates to approximately 26% opacity.
	alphaStart = 0x44
	// alphaMiddle evaluates to approximately 8% opacity.
	alphaMiddle = 0x14

	alphaEnd = 0x00
)

// CornerMode selects which side of a corner arc receives the shadow.
type CornerMode int

const (
	// CornerOutside paints the shadow outside the arc, clipping away
	// the wedge already covered by the shape. Used for convex corners.
	CornerOutside CornerMode = iota

	// CornerInside paints the shadow only within the arc wedge, with
	// density increasing toward the outer radius. Used for concave
	// corners, typically together with a negative sweep angle.
	CornerInside
)

// String returns a human-readable representation of the corner mode.
func (m CornerMode) String() string {
	switch m {
	case CornerOutside:
		return "outside"
	case CornerInside:
		return "inside"
	default:
		return fmt.Sprintf("CornerMode(%d)", int(m))
	}
}

// Renderer draws linear and radial gradient shadows onto a Canvas.
//
// A Renderer owns reusable scratch buffers (gradient stops, wedge
// path) that are overwritten on every draw call, so a single instance
// must not be used from multiple goroutines or reentrantly; callers
// serialize all draw calls per instance. Draw calls borrow the canvas,
// transform, and bounds for the call duration only.
type Renderer struct {
	shadowPaint rendering.Paint // flat fill in the start color
	cornerPaint rendering.Paint // radial gradient, anti-aliased
	edgePaint   rendering.Paint // linear gradient, no anti-aliasing

	startColor  rendering.Color
	middleColor rendering.Color
	endColor    rendering.Color

	// Scratch stop buffers. Positions for the edge gradient are fixed
	// {0, .5, 1}; corner positions default to {0, 0, .5, 1} and the
	// middle two are recomputed per outside-mode draw.
	edgeStops   [3]rendering.GradientStop
	cornerStops [4]rendering.GradientStop

	// Wedge path reused by outside-mode corner draws.
	scratch rendering.Path
}

// New creates a Renderer with a black shadow color.
func New() *Renderer {
	return NewWithColor(rendering.ColorBlack)
}

// NewWithColor creates a Renderer deriving its gradient colors from
// the given base color.
func NewWithColor(color rendering.Color) *Renderer {
	r := &Renderer{
		shadowPaint: rendering.Paint{Style: rendering.PaintStyleFill, AntiAlias: true},
		cornerPaint: rendering.Paint{Style: rendering.PaintStyleFill, AntiAlias: true},
		edgePaint:   rendering.Paint{Style: rendering.PaintStyleFill, AntiAlias: false},
	}
	r.edgeStops[1].Position = 0.5
	r.edgeStops[2].Position = 1
	r.cornerStops[2].Position = 0.5
	r.cornerStops[3].Position = 1
	r.SetShadowColor(color)
	return r
}

// SetShadowColor derives the start, middle, and end gradient colors
// from the given base color. The three derived colors share the base's
// RGB channels and differ only in alpha. Affects all subsequent draws.
func (r *Renderer) SetShadowColor(color rendering.Color) {
	r.startColor = color.WithAlpha(alphaStart)
	r.middleColor = color.WithAlpha(alphaMiddle)
	r.endColor = color.WithAlpha(alphaEnd)
	r.shadowPaint.Color = r.startColor
}

// ShadowPaint returns a flat (non-gradient) fill paint in the shadow's
// start color, for callers needing a solid fallback fill.
func (r *Renderer) ShadowPaint() rendering.Paint {
	return r.shadowPaint
}

// DrawEdgeShadow draws a linear-gradient shadow strip for a straight
// edge. The rect is extended downward by elevation and then shifted up
// by elevation, so the gradient runs from fully transparent at the top
// to the start color at the original bottom edge. The adjusted rect is
// returned; the caller's bounds are not modified.
//
// The transform is applied inside a Save/Restore pair and does not
// leak to subsequent draws. Elevation must be non-negative; it affects
// geometry only, never the gradient colors.
func (r *Renderer) DrawEdgeShadow(canvas rendering.Canvas, transform rendering.Matrix, bounds rendering.Rect, elevation float64) rendering.Rect {
	bounds.Bottom += elevation
	bounds = bounds.Translate(0, -elevation)

	r.edgeStops[0].Color = r.endColor
	r.edgeStops[1].Color = r.middleColor
	r.edgeStops[2].Color = r.startColor

	r.edgePaint.Gradient = rendering.NewLinearGradient(
		rendering.Offset{X: bounds.Left, Y: bounds.Top},
		rendering.Offset{X: bounds.Left, Y: bounds.Bottom},
		r.edgeStops[:],
		rendering.TileModeClamp,
	)

	canvas.Save()
	canvas.Concat(transform)
	canvas.DrawRect(bounds, r.edgePaint)
	canvas.Restore()
	return bounds
}

// DrawCornerShadow draws a radial-gradient shadow for a corner arc
// spanning startDeg..startDeg+sweepDeg (degrees) over bounds.
//
// In CornerOutside mode the bounds are inset outward by elevation, the
// wedge already covered by the shape is clip-subtracted, and gradient
// density decreases outward. In CornerInside mode (concave corners,
// conventionally a negative sweep) the shadow is painted only within
// the arc wedge with density increasing toward the outer radius, with
// no inset and no clip.
//
// Callers must ensure bounds.Width() > 0 and elevation <
// bounds.Width()/2; otherwise the computed gradient positions fall
// outside [0, 1] and the visual result is undefined.
func (r *Renderer) DrawCornerShadow(canvas rendering.Canvas, transform rendering.Matrix, bounds rendering.Rect, elevation, startDeg, sweepDeg float64, mode CornerMode) {
	inside := mode == CornerInside

	if inside {
		r.cornerStops[0].Color = rendering.ColorTransparent
		r.cornerStops[1].Color = r.endColor
		r.cornerStops[2].Color = r.middleColor
		r.cornerStops[3].Color = r.startColor
		// Default positions; outside-mode draws leave recomputed
		// values behind in the shared buffer.
		r.cornerStops[1].Position = 0
		r.cornerStops[2].Position = 0.5
	} else {
		// Wedge covered by the arc itself, subtracted from the clip so
		// the shadow is not double-painted over the shape.
		center := bounds.Center()
		r.scratch.Rewind()
		r.scratch.MoveTo(center.X, center.Y)
		r.scratch.ArcTo(bounds, startDeg, sweepDeg)
		r.scratch.Close()

		bounds = bounds.Inset(-elevation, -elevation)
		r.cornerStops[0].Color = rendering.ColorTransparent
		r.cornerStops[1].Color = r.startColor
		r.cornerStops[2].Color = r.middleColor
		r.cornerStops[3].Color = r.endColor

		startRatio := 1 - elevation/(bounds.Width()/2)
		midRatio := startRatio + (1-startRatio)/2
		r.cornerStops[1].Position = startRatio
		r.cornerStops[2].Position = midRatio
	}

	r.cornerPaint.Gradient = rendering.NewRadialGradient(
		bounds.Center(),
		bounds.Width()/2,
		r.cornerStops[:],
		rendering.TileModeClamp,
	)

	canvas.Save()
	canvas.Concat(transform)
	if !inside {
		canvas.ClipPath(&r.scratch, rendering.ClipOpDifference)
	}
	canvas.DrawArc(bounds, startDeg, sweepDeg, true, r.cornerPaint)
	canvas.Restore()
}
