package shadow

import (
	"math"

	"github.com/go-drift/shade/pkg/rendering"
)

// DrawRoundRectShadow draws the complete shadow for a rounded
// rectangle with uniform corner radii: four edge strips and four
// convex corner arcs walked clockwise from the top-left corner.
//
// The corner radius must be greater than zero so the corner gradient
// geometry is non-degenerate. Degenerate edges (fully rounded sides)
// are skipped.
func (r *Renderer) DrawRoundRectShadow(canvas rendering.Canvas, rrect rendering.RRect, elevation float64) {
	rad := rrect.UniformRadius()
	rect := rrect.Rect

	edges := []struct {
		start  rendering.Offset
		angle  float64 // rotation in degrees, clockwise
		length float64
	}{
		{rendering.Offset{X: rect.Left + rad, Y: rect.Top}, 0, rect.Width() - 2*rad},
		{rendering.Offset{X: rect.Right, Y: rect.Top + rad}, 90, rect.Height() - 2*rad},
		{rendering.Offset{X: rect.Right - rad, Y: rect.Bottom}, 180, rect.Width() - 2*rad},
		{rendering.Offset{X: rect.Left, Y: rect.Bottom - rad}, 270, rect.Height() - 2*rad},
	}
	for _, e := range edges {
		if e.length <= 0 {
			continue
		}
		transform := rendering.Translation(e.start.X, e.start.Y).
			Multiply(rendering.Rotation(e.angle * math.Pi / 180))
		r.DrawEdgeShadow(canvas, transform, rendering.Rect{Right: e.length}, elevation)
	}

	corners := []struct {
		center   rendering.Offset
		startDeg float64
	}{
		{rendering.Offset{X: rect.Left + rad, Y: rect.Top + rad}, 180},
		{rendering.Offset{X: rect.Right - rad, Y: rect.Top + rad}, 270},
		{rendering.Offset{X: rect.Right - rad, Y: rect.Bottom - rad}, 0},
		{rendering.Offset{X: rect.Left + rad, Y: rect.Bottom - rad}, 90},
	}
	for _, c := range corners {
		bounds := rendering.Rect{
			Left:   c.center.X - rad,
			Top:    c.center.Y - rad,
			Right:  c.center.X + rad,
			Bottom: c.center.Y + rad,
		}
		r.DrawCornerShadow(canvas, rendering.Identity(), bounds, elevation, c.startDeg, 90, CornerOutside)
	}
}
