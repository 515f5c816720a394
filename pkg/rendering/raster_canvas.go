package rendering

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas is a software Canvas implementation rendering into an
// in-memory RGBA image. It rasterizes filled geometry with
// golang.org/x/image/vector and evaluates gradient paints per pixel.
//
// A RasterCanvas is not safe for concurrent use.
type RasterCanvas struct {
	img    *image.RGBA
	width  int
	height int

	state rasterState
	stack []rasterState

	ras  *vector.Rasterizer
	mask *image.Alpha // scratch coverage buffer, reused across fills
}

// rasterState is the transform and clip state saved/restored by
// Save/Restore. Clip masks are immutable once installed; clip
// operations always allocate a fresh mask.
type rasterState struct {
	ctm  Matrix
	clip *image.Alpha // nil means unclipped
}

// NewRasterCanvas creates a software canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		state:  rasterState{ctm: Identity()},
		ras:    vector.NewRasterizer(width, height),
		mask:   image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Image returns the backing image. The canvas keeps drawing into the
// same image; copy it if a snapshot is needed.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Concat(m Matrix) {
	c.state.ctm = c.state.ctm.Multiply(m)
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.Concat(Translation(dx, dy))
}

func (c *RasterCanvas) Scale(sx, sy float64) {
	c.Concat(Scaling(sx, sy))
}

func (c *RasterCanvas) Rotate(radians float64) {
	c.Concat(Rotation(radians))
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	path := NewPath()
	path.AddRect(rect)
	c.ClipPath(path, ClipOpIntersect)
}

func (c *RasterCanvas) ClipPath(path *Path, op ClipOp) {
	cov, _ := c.rasterize(path, c.state.ctm)
	clip := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	old := c.state.clip
	for i := range clip.Pix {
		prev := uint32(0xFF)
		if old != nil {
			prev = uint32(old.Pix[i])
		}
		m := uint32(cov.Pix[i])
		if op == ClipOpDifference {
			m = 0xFF - m
		}
		clip.Pix[i] = uint8(prev * m / 0xFF)
	}
	c.state.clip = clip
}

func (c *RasterCanvas) Clear(col Color) {
	r, g, b, a := premultiply(col)
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: color.RGBA{R: r, G: g, B: b, A: a}}, image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	if paint.Style == PaintStyleStroke {
		addRectRing(path, rect, strokeWidth(paint))
	} else {
		path.AddRect(rect)
	}
	c.fill(path, paint)
}

func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	// TODO: stroked rounded rects need an inner ring like DrawRect.
	path := NewPath()
	path.AddRRect(rrect)
	c.fill(path, paint)
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	oval := Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
	path := NewPath()
	if paint.Style == PaintStyleStroke {
		half := strokeWidth(paint) / 2
		path.AddOval(oval.Inset(-half, -half))
		inner := oval.Inset(half, half)
		if !inner.IsEmpty() {
			path.addOvalSubpath(inner, -360)
		}
	} else {
		path.AddOval(oval)
	}
	c.fill(path, paint)
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := strokeWidth(paint) / 2
	nx := -dy / length * half
	ny := dx / length * half

	path := NewPath()
	path.MoveTo(start.X+nx, start.Y+ny)
	path.LineTo(end.X+nx, end.Y+ny)
	path.LineTo(end.X-nx, end.Y-ny)
	path.LineTo(start.X-nx, start.Y-ny)
	path.Close()
	c.fill(path, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	// Paths are fill-only; stroke styles fall back to filling.
	c.fill(path, paint)
}

func (c *RasterCanvas) DrawArc(oval Rect, startDeg, sweepDeg float64, useCenter bool, paint Paint) {
	path := NewPath()
	if useCenter {
		center := oval.Center()
		path.MoveTo(center.X, center.Y)
	}
	path.ArcTo(oval, startDeg, sweepDeg)
	path.Close()
	c.fill(path, paint)
}

func (c *RasterCanvas) Size() Size {
	return Size{Width: float64(c.width), Height: float64(c.height)}
}

// strokeWidth returns the paint's stroke width, defaulting to 1.
func strokeWidth(paint Paint) float64 {
	if paint.StrokeWidth <= 0 {
		return 1
	}
	return paint.StrokeWidth
}

// addRectRing appends a rectangular ring (outer rect clockwise, inner
// rect counterclockwise) approximating a centered stroke of width w.
func addRectRing(path *Path, r Rect, w float64) {
	half := w / 2
	outer := r.Inset(-half, -half)
	path.AddRect(outer)
	inner := r.Inset(half, half)
	if inner.IsEmpty() {
		return
	}
	path.MoveTo(inner.Left, inner.Top)
	path.LineTo(inner.Left, inner.Bottom)
	path.LineTo(inner.Right, inner.Bottom)
	path.LineTo(inner.Right, inner.Top)
	path.Close()
}

// rasterize renders the path's coverage under the given transform into
// the scratch mask. It returns the mask and the device-space bounding
// box of the path clamped to the canvas.
func (c *RasterCanvas) rasterize(path *Path, ctm Matrix) (*image.Alpha, image.Rectangle) {
	for i := range c.mask.Pix {
		c.mask.Pix[i] = 0
	}
	c.ras.Reset(c.width, c.height)
	c.ras.DrawOp = draw.Src

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p Offset) Offset {
		q := ctm.TransformPoint(p)
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
		return q
	}

	hasSubpath := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			hasSubpath = true
			q := grow(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
			c.ras.MoveTo(float32(q.X), float32(q.Y))
		case PathOpLineTo:
			if !hasSubpath {
				continue
			}
			q := grow(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
			c.ras.LineTo(float32(q.X), float32(q.Y))
		case PathOpQuadTo:
			if !hasSubpath {
				continue
			}
			q1 := grow(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
			q2 := grow(Offset{X: cmd.Args[2], Y: cmd.Args[3]})
			c.ras.QuadTo(float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y))
		case PathOpCubicTo:
			if !hasSubpath {
				continue
			}
			q1 := grow(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
			q2 := grow(Offset{X: cmd.Args[2], Y: cmd.Args[3]})
			q3 := grow(Offset{X: cmd.Args[4], Y: cmd.Args[5]})
			c.ras.CubeTo(float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y), float32(q3.X), float32(q3.Y))
		case PathOpClose:
			if !hasSubpath {
				continue
			}
			c.ras.ClosePath()
		}
	}
	if minX > maxX || minY > maxY {
		return c.mask, image.Rectangle{}
	}
	c.ras.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	bbox := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	return c.mask, bbox
}

// fill rasterizes the path under the current transform and composites
// the paint over the backing image, honoring the clip mask.
func (c *RasterCanvas) fill(path *Path, paint Paint) {
	if path.IsEmpty() {
		return
	}
	cov, bbox := c.rasterize(path, c.state.ctm)
	if bbox.Empty() {
		return
	}

	gradient := paint.Gradient
	if gradient != nil && !gradient.IsValid() {
		gradient = nil
	}
	inv := c.state.ctm.Invert()
	clip := c.state.clip

	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			i := y*c.width + x
			coverage := uint32(cov.Pix[i])
			if coverage == 0 {
				continue
			}
			if !paint.AntiAlias {
				// Hard edge: snap coverage to opaque or empty.
				if coverage < 0x80 {
					continue
				}
				coverage = 0xFF
			}
			if clip != nil {
				coverage = coverage * uint32(clip.Pix[i]) / 0xFF
				if coverage == 0 {
					continue
				}
			}
			col := paint.Color
			if gradient != nil {
				local := inv.TransformPoint(Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
				col = gradient.ColorAtPoint(local)
			}
			c.blend(x, y, col, coverage)
		}
	}
}

// blend composites col over the pixel at (x, y) with the given
// coverage (0-255), using source-over with premultiplied alpha.
func (c *RasterCanvas) blend(x, y int, col Color, coverage uint32) {
	alpha := uint32(col.Alpha()) * coverage / 0xFF
	if alpha == 0 {
		return
	}
	sr := uint32(col.Red()) * alpha / 0xFF
	sg := uint32(col.Green()) * alpha / 0xFF
	sb := uint32(col.Blue()) * alpha / 0xFF

	o := c.img.PixOffset(x, y)
	pix := c.img.Pix[o : o+4 : o+4]
	ia := 0xFF - alpha
	pix[0] = uint8(sr + uint32(pix[0])*ia/0xFF)
	pix[1] = uint8(sg + uint32(pix[1])*ia/0xFF)
	pix[2] = uint8(sb + uint32(pix[2])*ia/0xFF)
	pix[3] = uint8(alpha + uint32(pix[3])*ia/0xFF)
}

// premultiply converts a Color to premultiplied RGBA bytes.
func premultiply(col Color) (r, g, b, a uint8) {
	alpha := uint32(col.Alpha())
	return uint8(uint32(col.Red()) * alpha / 0xFF),
		uint8(uint32(col.Green()) * alpha / 0xFF),
		uint8(uint32(col.Blue()) * alpha / 0xFF),
		uint8(alpha)
}
