package graphics

// Canvas records or renders drawing commands.
//
// The layout core only ever calls Save, Translate and Restore; every other
// method belongs to widgets and the backend behind the canvas.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// DrawRect fills a rectangle with the given color.
	DrawRect(rect Rect, color Color)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Point, color Color)
}
