package rendering

import "testing"

// countingCanvas tallies replayed operations by name.
type countingCanvas struct {
	counts map[string]int
	size   Size
}

func newCountingCanvas() *countingCanvas {
	return &countingCanvas{counts: map[string]int{}, size: Size{Width: 100, Height: 100}}
}

func (c *countingCanvas) Save()                  { c.counts["save"]++ }
func (c *countingCanvas) Restore()               { c.counts["restore"]++ }
func (c *countingCanvas) Concat(Matrix)          { c.counts["concat"]++ }
func (c *countingCanvas) Translate(_, _ float64) { c.counts["translate"]++ }
func (c *countingCanvas) Scale(_, _ float64)     { c.counts["scale"]++ }
func (c *countingCanvas) Rotate(float64)         { c.counts["rotate"]++ }
func (c *countingCanvas) ClipRect(Rect)          { c.counts["clip_rect"]++ }
func (c *countingCanvas) ClipPath(p *Path, _ ClipOp) {
	c.counts["clip_path"]++
	c.counts["clip_path_commands"] += len(p.Commands)
}
func (c *countingCanvas) Clear(Color)                            { c.counts["clear"]++ }
func (c *countingCanvas) DrawRect(Rect, Paint)                   { c.counts["draw_rect"]++ }
func (c *countingCanvas) DrawRRect(RRect, Paint)                 { c.counts["draw_rrect"]++ }
func (c *countingCanvas) DrawCircle(Offset, float64, Paint)      { c.counts["draw_circle"]++ }
func (c *countingCanvas) DrawLine(Offset, Offset, Paint)         { c.counts["draw_line"]++ }
func (c *countingCanvas) DrawPath(*Path, Paint)                  { c.counts["draw_path"]++ }
func (c *countingCanvas) DrawArc(Rect, float64, float64, bool, Paint) {
	c.counts["draw_arc"]++
}
func (c *countingCanvas) Size() Size { return c.size }

func TestPictureRecorderReplay(t *testing.T) {
	recorder := &PictureRecorder{}
	canvas := recorder.BeginRecording(Size{Width: 50, Height: 50})

	canvas.Save()
	canvas.Concat(Translation(10, 10))
	canvas.DrawRect(RectFromLTWH(0, 0, 20, 20), DefaultPaint())
	canvas.DrawArc(RectFromLTWH(0, 0, 20, 20), 0, 90, true, DefaultPaint())
	canvas.Restore()

	list := recorder.EndRecording()
	if list.Len() != 5 {
		t.Fatalf("recorded %d ops, want 5", list.Len())
	}
	if list.Size() != (Size{Width: 50, Height: 50}) {
		t.Fatalf("list size = %v", list.Size())
	}

	target := newCountingCanvas()
	list.Paint(target)
	for _, name := range []string{"save", "concat", "draw_rect", "draw_arc", "restore"} {
		if target.counts[name] != 1 {
			t.Fatalf("replayed %q %d times, want 1", name, target.counts[name])
		}
	}
}

func TestRecorderIgnoresOpsAfterEnd(t *testing.T) {
	recorder := &PictureRecorder{}
	canvas := recorder.BeginRecording(Size{Width: 10, Height: 10})
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), DefaultPaint())
	list := recorder.EndRecording()

	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), DefaultPaint())
	if list.Len() != 1 {
		t.Fatalf("ops after EndRecording leaked into list: len = %d", list.Len())
	}
}

func TestRecorderSnapshotsClipPaths(t *testing.T) {
	recorder := &PictureRecorder{}
	canvas := recorder.BeginRecording(Size{Width: 10, Height: 10})

	scratch := NewPath()
	scratch.MoveTo(0, 0)
	scratch.LineTo(5, 5)
	scratch.Close()
	canvas.ClipPath(scratch, ClipOpDifference)

	// Scratch paths get reused; the recording must not see the rewrite.
	scratch.Rewind()
	scratch.MoveTo(9, 9)

	list := recorder.EndRecording()
	target := newCountingCanvas()
	list.Paint(target)
	if got := target.counts["clip_path_commands"]; got != 3 {
		t.Fatalf("replayed clip path has %d commands, want snapshot of 3", got)
	}
}

func TestEndRecordingWithoutBegin(t *testing.T) {
	recorder := &PictureRecorder{}
	list := recorder.EndRecording()
	if list.Len() != 0 {
		t.Fatalf("unexpected ops in empty recording: %d", list.Len())
	}
}
