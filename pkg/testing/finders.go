package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

// Finder locates nodes in the widget tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *layout.WidgetBase) []*layout.WidgetBase
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	root   *layout.WidgetBase
	nodes  []*layout.WidgetBase
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *layout.WidgetBase {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *layout.WidgetBase {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *layout.WidgetBase {
	if index < 0 || index >= len(r.nodes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), desc))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*layout.WidgetBase {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Widget returns the owned widget of the first match. Panics if no matches.
func (r FinderResult) Widget() layout.WidgetInner {
	return r.First().Inner()
}

// GlobalRect returns the first match's rect in root coordinates.
// Panics if no matches.
func (r FinderResult) GlobalRect() graphics.Rect {
	target := r.First()
	rect, _ := globalRect(r.root, target, graphics.Point{})
	return rect
}

// --- Concrete finders ---

// typeFinder matches nodes whose widget is of the specified type.
type typeFinder struct {
	widgetType reflect.Type
	typeName   string
}

func (f *typeFinder) Evaluate(root *layout.WidgetBase) []*layout.WidgetBase {
	return collectMatches(root, func(n *layout.WidgetBase) bool {
		return reflect.TypeOf(n.Inner()) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches nodes whose widget has type T,
// usually a pointer type such as *widgets.Padding.
func ByType[T layout.WidgetInner]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &typeFinder{widgetType: t, typeName: t.String()}
}

// texter is implemented by widgets that display a string.
type texter interface {
	Text() string
}

// textFinder matches text-displaying widgets by exact content.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root *layout.WidgetBase) []*layout.WidgetBase {
	return collectMatches(root, func(n *layout.WidgetBase) bool {
		t, ok := n.Inner().(texter)
		return ok && t.Text() == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches widgets with a Text() method
// returning exactly text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches text-displaying widgets containing substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root *layout.WidgetBase) []*layout.WidgetBase {
	return collectMatches(root, func(n *layout.WidgetBase) bool {
		t, ok := n.Inner().(texter)
		return ok && strings.Contains(t.Text(), f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches widgets whose Text()
// contains substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(*layout.WidgetBase) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *layout.WidgetBase) []*layout.WidgetBase {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*layout.WidgetBase) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *layout.WidgetBase) []*layout.WidgetBase {
	var results []*layout.WidgetBase
	seen := make(map[*layout.WidgetBase]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		ancestor.VisitChildren(func(child *layout.WidgetBase) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are strict descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *layout.WidgetBase, fn func(*layout.WidgetBase) bool) []*layout.WidgetBase {
	if root == nil {
		return nil
	}
	var out []*layout.WidgetBase
	root.Walk(func(n *layout.WidgetBase, _ int) {
		if fn(n) {
			out = append(out, n)
		}
	})
	return out
}

// globalRect searches below node for target, accumulating the parent
// origins on the way down.
func globalRect(node, target *layout.WidgetBase, parentOrigin graphics.Point) (graphics.Rect, bool) {
	if node == nil {
		return graphics.Rect{}, false
	}
	rect, _ := node.LayoutRect()
	rect = rect.Translate(parentOrigin.X, parentOrigin.Y)
	if node == target {
		return rect, true
	}
	var (
		found  graphics.Rect
		ok     bool
		origin = rect.Origin()
	)
	node.VisitChildren(func(child *layout.WidgetBase) {
		if ok {
			return
		}
		found, ok = globalRect(child, target, origin)
	})
	return found, ok
}
