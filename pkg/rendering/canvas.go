package rendering

import "fmt"

// ClipOp describes how a clip shape combines with the current clip region.
type ClipOp int

const (
	// ClipOpIntersect restricts drawing to the intersection with the shape.
	ClipOpIntersect ClipOp = iota
	// ClipOpDifference subtracts the shape from the drawable region.
	ClipOpDifference
)

// String returns a human-readable representation of the clip operation.
func (o ClipOp) String() string {
	switch o {
	case ClipOpIntersect:
		return "intersect"
	case ClipOpDifference:
		return "difference"
	default:
		return fmt.Sprintf("ClipOp(%d)", int(o))
	}
}

// Canvas records or renders drawing commands.
//
// Canvas implementations are single-threaded; all calls must come from
// the thread that owns the underlying surface.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Concat multiplies the current transform by the given matrix.
	Concat(m Matrix)

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipPath combines the given path with the clip region using op.
	// ClipOpDifference subtracts the path from the drawable region.
	ClipPath(path *Path, op ClipOp)

	// Clear fills the entire canvas with the given color, ignoring the
	// current transform and clip.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawArc draws an arc of the ellipse inscribed in oval, from
	// startDeg sweeping sweepDeg (degrees, clockwise positive). If
	// useCenter is true the arc is a pie slice closed through the
	// ellipse center; otherwise the arc's chord is closed when filling.
	DrawArc(oval Rect, startDeg, sweepDeg float64, useCenter bool, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
