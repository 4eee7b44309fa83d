package graphics

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is the font face used when none is configured.
var DefaultFace font.Face = basicfont.Face7x13

type imageCanvasState struct {
	origin Point
	clip   image.Rectangle
}

// ImageCanvas rasterizes drawing commands into an RGBA image.
// Only translation is supported as a transform.
type ImageCanvas struct {
	dst   *image.RGBA
	face  font.Face
	state imageCanvasState
	stack []imageCanvasState
}

// NewImageCanvas returns a canvas drawing into a new image of the given size.
// A nil face selects DefaultFace.
func NewImageCanvas(size Size, face font.Face) *ImageCanvas {
	if face == nil {
		face = DefaultFace
	}
	bounds := image.Rect(0, 0, int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	return &ImageCanvas{
		dst:   image.NewRGBA(bounds),
		face:  face,
		state: imageCanvasState{clip: bounds},
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

// Save pushes the current translation and clip.
func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent state. Unbalanced calls are ignored.
func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.origin = c.state.origin.Translate(dx, dy)
}

// ClipRect intersects the clip with rect in local coordinates.
func (c *ImageCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.toDevice(rect))
}

// DrawRect fills rect with color, blending over existing pixels.
func (c *ImageCanvas) DrawRect(rect Rect, color Color) {
	r := c.toDevice(rect).Intersect(c.state.clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.dst, r, image.NewUniform(color), image.Point{}, draw.Over)
}

// DrawText draws text with its top-left corner at position.
func (c *ImageCanvas) DrawText(text string, position Point, color Color) {
	if text == "" || c.state.clip.Empty() {
		return
	}
	dst, ok := c.dst.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	p := c.state.origin.Add(position)
	ascent := c.face.Metrics().Ascent
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(p.X))), Y: fixed.I(int(math.Round(p.Y))) + ascent},
	}
	d.DrawString(text)
}

func (c *ImageCanvas) toDevice(rect Rect) image.Rectangle {
	r := rect.Translate(c.state.origin.X, c.state.origin.Y)
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Right)),
		int(math.Round(r.Bottom)),
	)
}

// FontMeasurer measures single-line text with a font face.
type FontMeasurer struct {
	Face font.Face
}

// MeasureText returns the advance width and line height of text.
func (m FontMeasurer) MeasureText(text string) Size {
	face := m.Face
	if face == nil {
		face = DefaultFace
	}
	return Size{
		Width:  float64(font.MeasureString(face, text).Ceil()),
		Height: float64(face.Metrics().Height.Ceil()),
	}
}
