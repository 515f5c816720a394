package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/shade/cmd/shade/internal/scene"
	"github.com/go-drift/shade/pkg/rendering"
	"github.com/go-drift/shade/pkg/shadow"
)

// newRenderCmd creates the render command: scene YAML in, PNG out.
func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Render a scene's shapes and shadows to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("scene loaded", "shapes", len(sc.Shapes), "size", fmt.Sprintf("%dx%d", sc.Width, sc.Height))

			list := record(sc)
			canvas := rendering.NewRasterCanvas(sc.Width, sc.Height)
			list.Paint(canvas)

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()
			if err := png.Encode(f, canvas.Image()); err != nil {
				return fmt.Errorf("failed to encode %s: %w", output, err)
			}

			logger.Info("rendered", "scene", args[0], "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "scene.png", "output PNG path")
	return cmd
}

// record draws the scene into a display list: background, then each
// shape's shadow beneath its fill.
func record(sc *scene.Scene) *rendering.DisplayList {
	recorder := &rendering.PictureRecorder{}
	canvas := recorder.BeginRecording(rendering.Size{
		Width:  float64(sc.Width),
		Height: float64(sc.Height),
	})

	canvas.Clear(sc.Background)

	renderer := shadow.NewWithColor(sc.ShadowColor)
	for _, s := range sc.Shapes {
		rrect := rendering.RRectFromRectAndRadius(s.Rect, rendering.CircularRadius(s.Radius))
		if s.Elevation > 0 {
			renderer.DrawRoundRectShadow(canvas, rrect, s.Elevation)
		}
		fill := rendering.Paint{Color: s.Fill, Style: rendering.PaintStyleFill, AntiAlias: true}
		canvas.DrawRRect(rrect, fill)
	}

	return recorder.EndRecording()
}
