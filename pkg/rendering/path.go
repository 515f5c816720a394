package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, ArcTo, and Close.
// Use with Canvas.DrawPath to fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// ArcTo appends an elliptical arc inscribed in oval, from startDeg
// sweeping sweepDeg (both in degrees, clockwise positive in y-down
// coordinates; sweep may be negative).
//
// If the path is empty the arc begins a new subpath; otherwise a line
// is drawn from the current point to the arc's start point.
func (p *Path) ArcTo(oval Rect, startDeg, sweepDeg float64) {
	center := oval.Center()
	rx := oval.Width() / 2
	ry := oval.Height() / 2

	a1 := startDeg * math.Pi / 180
	sweep := sweepDeg * math.Pi / 180

	sx := center.X + rx*math.Cos(a1)
	sy := center.Y + ry*math.Sin(a1)
	if p.IsEmpty() {
		p.MoveTo(sx, sy)
	} else {
		p.LineTo(sx, sy)
	}
	if sweep == 0 {
		return
	}

	// Split into cubic bezier segments of at most 90 degrees.
	numSegments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(numSegments)
	for i := 0; i < numSegments; i++ {
		from := a1 + float64(i)*step
		p.arcSegment(center, rx, ry, from, from+step)
	}
}

// arcSegment appends one cubic bezier approximating the elliptical arc
// from angle a1 to a2 (radians, |a2-a1| <= pi/2).
func (p *Path) arcSegment(center Offset, rx, ry, a1, a2 float64) {
	half := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*half*half) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := center.X + rx*cos1
	y1 := center.Y + ry*sin1
	x2 := center.X + rx*cos2
	y2 := center.Y + ry*sin2

	p.CubicTo(
		x1-alpha*rx*sin1, y1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2,
	)
}

// AddOval appends the ellipse inscribed in oval as a closed clockwise
// subpath.
func (p *Path) AddOval(oval Rect) {
	p.addOvalSubpath(oval, 360)
}

// addOvalSubpath appends the full ellipse as its own subpath, wound by
// the sign of sweepDeg.
func (p *Path) addOvalSubpath(oval Rect, sweepDeg float64) {
	center := oval.Center()
	rx := oval.Width() / 2
	ry := oval.Height() / 2
	p.MoveTo(center.X+rx, center.Y)

	step := sweepDeg / 4 * math.Pi / 180
	for i := 0; i < 4; i++ {
		from := float64(i) * step
		p.arcSegment(center, rx, ry, from, from+step)
	}
	p.Close()
}

// AddRect appends the rectangle as a closed subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect appends the rounded rectangle as a closed subpath.
// Corner radii are clamped to half the rect's dimensions.
func (p *Path) AddRRect(rr RRect) {
	r := rr.Rect
	clampR := func(rad Radius) Radius {
		return Radius{
			X: math.Min(rad.X, r.Width()/2),
			Y: math.Min(rad.Y, r.Height()/2),
		}
	}
	tl, tr := clampR(rr.TopLeft), clampR(rr.TopRight)
	br, bl := clampR(rr.BottomRight), clampR(rr.BottomLeft)

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	p.ArcTo(Rect{Left: r.Right - 2*tr.X, Top: r.Top, Right: r.Right, Bottom: r.Top + 2*tr.Y}, 270, 90)
	p.LineTo(r.Right, r.Bottom-br.Y)
	p.ArcTo(Rect{Left: r.Right - 2*br.X, Top: r.Bottom - 2*br.Y, Right: r.Right, Bottom: r.Bottom}, 0, 90)
	p.LineTo(r.Left+bl.X, r.Bottom)
	p.ArcTo(Rect{Left: r.Left, Top: r.Bottom - 2*bl.Y, Right: r.Left + 2*bl.X, Bottom: r.Bottom}, 90, 90)
	p.LineTo(r.Left, r.Top+tl.Y)
	p.ArcTo(Rect{Left: r.Left, Top: r.Top, Right: r.Left + 2*tl.X, Bottom: r.Top + 2*tl.Y}, 180, 90)
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Rewind removes all commands from the path, keeping allocated capacity
// for reuse.
func (p *Path) Rewind() {
	p.Commands = p.Commands[:0]
}
