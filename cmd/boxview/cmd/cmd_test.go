package cmd

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/boxlayout/cmd/boxview/internal/cells"
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
	"github.com/go-drift/boxlayout/pkg/widgets"
)

// buttonCenter returns the root-space center of the button with id.
func buttonCenter(t *testing.T, root *layout.Root, id string) graphics.Point {
	t.Helper()
	var origins []graphics.Point
	var center *graphics.Point
	root.Walk(func(node *layout.WidgetBase, depth int) {
		rect, _ := node.LayoutRect()
		origin := rect.Origin()
		if depth > 0 {
			origin = origin.Add(origins[depth-1])
		}
		origins = append(origins[:depth], origin)
		if b, ok := node.Inner().(*widgets.Button); ok && b.ID() == id {
			c := graphics.RectFromOriginSize(origin, node.Size()).Center()
			center = &c
		}
	})
	require.NotNil(t, center, "button %q not found", id)
	return *center
}

func newTestModel(width, height int) *viewModel {
	d := newDemo("demo", cellMetrics)
	m := &viewModel{demo: d, root: layout.NewRoot(d.tree, nil, layout.WithTextMeasurer(cells.Measurer{}))}
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m.View()
	return m
}

func click(m *viewModel, p graphics.Point) {
	x, y := int(p.X), int(p.Y)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestViewModel_ClickUpdatesCounter(t *testing.T) {
	m := newTestModel(40, 12)
	assert.Contains(t, m.View(), "count: 0")

	click(m, buttonCenter(t, m.root, "inc"))
	click(m, buttonCenter(t, m.root, "inc"))
	view := m.View()
	assert.Contains(t, view, "count: 2")
	assert.Contains(t, view, "Clicked(inc)")

	click(m, buttonCenter(t, m.root, "reset"))
	assert.Contains(t, m.View(), "count: 0")
	assert.Equal(t, 0, m.demo.count)
}

func TestViewModel_ViewFillsWindow(t *testing.T) {
	m := newTestModel(30, 10)
	assert.Len(t, strings.Split(m.View(), "\n"), 10)
	assert.Equal(t, graphics.Size{Width: 30, Height: 10}, m.root.Size())

	m.Update(tea.WindowSizeMsg{Width: 50, Height: 14})
	assert.Len(t, strings.Split(m.View(), "\n"), 14)
}

func TestViewModel_EmptyBeforeSize(t *testing.T) {
	d := newDemo("demo", cellMetrics)
	m := &viewModel{demo: d, root: layout.NewRoot(d.tree, nil)}
	assert.Empty(t, m.View())
}

func TestViewModel_QuitKeys(t *testing.T) {
	m := newTestModel(20, 5)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.Equal(t, tea.Quit(), cmd(), key.String())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want event.Event
	}{
		{"press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			event.PointerDown{Pos: graphics.Point{X: 3, Y: 4}, Button: event.ButtonPrimary}},
		{"release", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
			event.PointerUp{Pos: graphics.Point{X: 3, Y: 4}, Button: event.ButtonSecondary}},
		{"motion", tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
			event.PointerMove{Pos: graphics.Point{X: 1, Y: 2}}},
		{"wheel", tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			event.Wheel{Delta: graphics.Point{Y: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mouseEvent(tt.msg))
		})
	}
}

func TestKeyEvent(t *testing.T) {
	assert.Equal(t, event.Key{Name: "a", Rune: 'a', Pressed: true},
		keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}))
	assert.Equal(t, event.Key{Name: "enter", Pressed: true}, keyEvent(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, event.Key{Name: "alt+x", Rune: 'x', Mods: event.ModAlt, Pressed: true},
		keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}))
}

func TestDumpTree(t *testing.T) {
	d := newDemo("demo", cellMetrics)
	root := layout.NewRoot(d.tree, nil, layout.WithTextMeasurer(cells.Measurer{}))
	root.Layout(layout.Tight(graphics.Size{Width: 40, Height: 12}))

	var buf bytes.Buffer
	dumpTree(&buf, root)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	assert.Equal(t, "*widgets.Align (0,0)-(40,12) 40x12", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  *widgets.Padding "), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "    *widgets.Flex "), lines[2])

	var buttons int
	for _, line := range lines {
		if strings.Contains(line, "*widgets.Button") {
			buttons++
		}
	}
	assert.Equal(t, 3, buttons)
}

func TestRenderImage(t *testing.T) {
	e := env.With(env.New(), widgets.BackgroundColor, graphics.RGB(0x10, 0x20, 0x30))
	img := renderImage(widgets.Center(widgets.ColoredBox(10, 10, graphics.ColorRed)), e,
		graphics.Size{Width: 40, Height: 20})

	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(20, 10))
}

func TestRunPNG_WritesScaledFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	out := filepath.Join(dir, "out.png")

	require.NoError(t, Execute([]string{"png", "-o", out, "-width", "64", "-height", "32", "-scale", "2"}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunPNG_RejectsLargeScale(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	out := filepath.Join(dir, "huge.png")

	err := Execute([]string{"png", "-o", out, "-width", "64", "-height", "32", "-scale", "10000"})

	assert.ErrorContains(t, err, "out of range")
	assert.NoFileExists(t, out)
}

func TestExecute_UnknownCommand(t *testing.T) {
	assert.ErrorContains(t, Execute([]string{"frobnicate"}), "unknown command")
}

func TestExecute_MissingTheme(t *testing.T) {
	chdir(t, t.TempDir())
	assert.ErrorContains(t, Execute([]string{"dump", "-theme", "nope.yaml", "-width", "10", "-height", "5"}), "nope.yaml")
}

// chdir changes the working directory to dir for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
