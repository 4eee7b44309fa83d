package testing

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-drift/boxlayout/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawText(text string, position graphics.Point, color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(color),
		),
	})
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// Translations returns the accumulated translation at every drawing op, in
// order, by folding save/restore/translate over ops.
func Translations(ops []DisplayOp) []graphics.Point {
	var (
		stack   []graphics.Point
		current graphics.Point
		out     []graphics.Point
	)
	for _, op := range ops {
		switch op.Op {
		case "save":
			stack = append(stack, current)
		case "restore":
			if n := len(stack); n > 0 {
				current = stack[n-1]
				stack = stack[:n-1]
			}
		case "translate":
			current = current.Translate(op.Params["dx"].(float64), op.Params["dy"].(float64))
		case "drawRect", "drawText":
			out = append(out, current)
		}
	}
	return out
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// JSON marshaling emits the keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
