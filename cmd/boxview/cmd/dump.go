package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/go-drift/boxlayout/cmd/boxview/internal/cells"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the laid-out tree",
		Long: `Run one layout pass at the terminal size and print every node with
its rectangle in root coordinates. Sizes are in cells.

When stdout is not a terminal the size defaults to 80x24.`,
		Usage: "boxview dump [-width W] [-height H] [-theme file]",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	var common commonFlags
	var width, height int
	fs := newFlagSet(commands["dump"])
	common.register(fs)
	fs.IntVar(&width, "width", 0, "surface width in cells (default: terminal width)")
	fs.IntVar(&height, "height", 0, "surface height in cells (default: terminal height)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, e, err := common.setup()
	if err != nil {
		return err
	}
	defer installErrorHandler(os.Stderr, common.verbose)()

	tw, th := terminalSize()
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}

	d := newDemo(cfg.Title, cellMetrics)
	root := layout.NewRoot(d.tree, e, layout.WithTextMeasurer(cells.Measurer{}))
	root.Layout(layout.Tight(graphics.Size{Width: float64(width), Height: float64(height)}))
	dumpTree(os.Stdout, root)
	return nil
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

// dumpTree writes one line per node: its type, its rectangle in root
// coordinates and its size.
func dumpTree(w io.Writer, root *layout.Root) {
	var origins []graphics.Point
	root.Walk(func(node *layout.WidgetBase, depth int) {
		rect, _ := node.LayoutRect()
		origin := rect.Origin()
		if depth > 0 {
			origin = origin.Add(origins[depth-1])
		}
		origins = append(origins[:depth], origin)

		size := node.Size()
		fmt.Fprintf(w, "%s%T (%g,%g)-(%g,%g) %gx%g\n", strings.Repeat("  ", depth), node.Inner(),
			origin.X, origin.Y, origin.X+size.Width, origin.Y+size.Height, size.Width, size.Height)
	})
}
