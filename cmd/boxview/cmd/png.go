package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/go-drift/boxlayout/cmd/boxview/internal/config"
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "png",
		Short: "Render the demo to an image file",
		Long: `Lay out the demo at a pixel size, paint it into a raster image and
save it. The output format follows the file extension (png, jpg, gif,
bmp, tiff).

-scale enlarges the image with nearest-neighbor sampling so the
bitmap font stays crisp.`,
		Usage: "boxview png [-o out.png] [-width W] [-height H] [-scale N] [-theme file]",
		Run:   runPNG,
	})
}

func runPNG(args []string) error {
	var common commonFlags
	var out string
	var width, height, scale int
	fs := newFlagSet(commands["png"])
	common.register(fs)
	fs.StringVar(&out, "o", "boxview.png", "output file")
	fs.IntVar(&width, "width", 0, "surface width in pixels")
	fs.IntVar(&height, "height", 0, "surface height in pixels")
	fs.IntVar(&scale, "scale", 0, "integer upscale factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, e, err := common.setup()
	if err != nil {
		return err
	}
	defer installErrorHandler(os.Stderr, common.verbose)()

	if width <= 0 {
		width = cfg.Width
	}
	if height <= 0 {
		height = cfg.Height
	}
	if scale <= 0 {
		scale = cfg.Scale
	}
	if err := config.CheckScale(scale); err != nil {
		return err
	}

	img := renderImage(newDemo(cfg.Title, pixelMetrics).tree, e, graphics.Size{Width: float64(width), Height: float64(height)})
	var result image.Image = img
	if scale > 1 {
		result = imaging.Resize(img, width*scale, height*scale, imaging.NearestNeighbor)
	}
	if err := imaging.Save(result, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", out, result.Bounds().Dx(), result.Bounds().Dy())
	return nil
}

// renderImage lays tree out tightly at size and paints it over the theme
// background.
func renderImage(tree layout.WidgetInner, e *env.Env, size graphics.Size) *image.RGBA {
	root := layout.NewRoot(tree, e, layout.WithTextMeasurer(graphics.FontMeasurer{}))
	root.Layout(layout.Tight(size))

	canvas := graphics.NewImageCanvas(size, nil)
	canvas.DrawRect(graphics.RectFromOriginSize(graphics.Point{}, size), env.Get(e, widgets.BackgroundColor))
	root.Paint(canvas)
	return canvas.Image()
}
