package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "BOXLAYOUT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree geometry and display operations.
type Snapshot struct {
	Tree       *Node       `json:"tree"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// Node represents a node in the serialized widget tree.
type Node struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Size       [2]float64     `json:"size"`
	Offset     [2]float64     `json:"offset"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*Node        `json:"children,omitempty"`
}

// propertyWhitelist defines which fields to serialize per widget type.
// Types not listed here are serialized with size/offset only.
var propertyWhitelist = map[string][]string{
	"Padding":  {"insets"},
	"SizedBox": {"Width", "Height", "Color"},
	"Label":    {"text"},
	"Button":   {"id"},
	"Flex":     {"Direction", "Spacing"},
	"Align":    {"alignment"},
}

// CaptureSnapshot captures the current tree and the latest display ops.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.root != nil {
		counter := &typeCounter{}
		snap.Tree = captureNode(t.root.Widget(), counter)
		snap.DisplayOps = t.ops
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// BOXLAYOUT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// String renders the tree as an indented outline, one node per line.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s%s size=%gx%g offset=%g,%g", strings.Repeat("  ", depth), n.ID,
		n.Size[0], n.Size[1], n.Offset[0], n.Offset[1])
	for _, k := range sortedKeys(n.Properties) {
		fmt.Fprintf(sb, " %s=%v", k, n.Properties[k])
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
}

// --- Internal ---

// typeCounter assigns stable IDs like "Flex#0", "Flex#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(w *layout.WidgetBase, counter *typeCounter) *Node {
	typeName := widgetTypeName(w.Inner())
	size := w.Size()
	rect, _ := w.LayoutRect()

	node := &Node{
		ID:     counter.next(typeName),
		Type:   typeName,
		Size:   [2]float64{round2(size.Width), round2(size.Height)},
		Offset: [2]float64{round2(rect.Left), round2(rect.Top)},
	}

	if props := captureProperties(w.Inner(), typeName); len(props) > 0 {
		node.Properties = props
	}

	w.VisitChildren(func(child *layout.WidgetBase) {
		node.Children = append(node.Children, captureNode(child, counter))
	})
	return node
}

func widgetTypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func captureProperties(w layout.WidgetInner, typeName string) map[string]any {
	whitelist, ok := propertyWhitelist[typeName]
	if !ok {
		return nil
	}

	v := reflect.ValueOf(w)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	props := make(map[string]any)
	for _, fieldName := range whitelist {
		field := v.FieldByName(fieldName)
		if !field.IsValid() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[fieldName] = val
		}
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type() == reflect.TypeOf(graphics.Color(0)) {
			return serializeColor(graphics.Color(v.Uint()))
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Struct:
		return serializeStruct(v)
	default:
		return nil
	}
}

// serializeStruct collects the exported fields of a struct value into a
// map. It works on unexported struct fields, which cannot be interfaced.
func serializeStruct(v reflect.Value) any {
	t := v.Type()
	m := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if val := serializeFieldValue(v.Field(i)); val != nil {
			m[f.Name] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
