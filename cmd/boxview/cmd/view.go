package cmd

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/boxlayout/cmd/boxview/internal/cells"
	"github.com/go-drift/boxlayout/pkg/event"
	"github.com/go-drift/boxlayout/pkg/graphics"
	"github.com/go-drift/boxlayout/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "view",
		Short: "Run the demo interactively in the terminal",
		Long: `Run the demo tree in the terminal.

The window size becomes tight constraints in cells. Mouse input is routed
through the tree as pointer events; keys are sent as key events. Press q,
esc or ctrl+c to quit.`,
		Usage: "boxview view [-theme file] [-log file]",
		Run:   runView,
	})
}

func runView(args []string) error {
	var common commonFlags
	var logPath string
	fs := newFlagSet(commands["view"])
	common.register(fs)
	fs.StringVar(&logPath, "log", "", "write pass traces and error reports to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, e, err := common.setup()
	if err != nil {
		return err
	}

	// The terminal belongs to the program; reports go to the log or nowhere.
	var logOut io.Writer = io.Discard
	opts := []layout.Option{layout.WithTextMeasurer(cells.Measurer{})}
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
		opts = append(opts, layout.WithLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	defer installErrorHandler(logOut, common.verbose)()

	d := newDemo(cfg.Title, cellMetrics)
	m := &viewModel{demo: d, root: layout.NewRoot(d.tree, e, opts...)}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

// viewModel adapts a Root to the bubbletea update loop.
type viewModel struct {
	demo          *demo
	root          *layout.Root
	width, height int
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dispatch(event.Resize{Size: graphics.Size{Width: float64(msg.Width), Height: float64(msg.Height)}})
	case tea.MouseMsg:
		if ev := mouseEvent(msg); ev != nil {
			m.dispatch(ev)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		m.dispatch(keyEvent(msg))
	}
	return m, nil
}

func (m *viewModel) dispatch(ev event.Event) {
	if m.demo.handle(m.root.Event(ev)) {
		m.root.MarkNeedsLayout()
	}
}

func (m *viewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	m.root.Layout(layout.Tight(graphics.Size{Width: float64(m.width), Height: float64(m.height)}))
	canvas := cells.New(m.width, m.height)
	m.root.Paint(canvas)
	return canvas.Render()
}

// mouseEvent translates a terminal mouse message. Cell (x, y) maps to the
// point at the cell's top-left corner.
func mouseEvent(msg tea.MouseMsg) event.Event {
	pos := graphics.Point{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return event.Wheel{Pos: pos, Delta: graphics.Point{Y: -1}}
	case tea.MouseButtonWheelDown:
		return event.Wheel{Pos: pos, Delta: graphics.Point{Y: 1}}
	}

	button := mouseButton(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		return event.PointerDown{Pos: pos, Button: button}
	case tea.MouseActionRelease:
		return event.PointerUp{Pos: pos, Button: button}
	case tea.MouseActionMotion:
		return event.PointerMove{Pos: pos, Button: button}
	}
	return nil
}

func mouseButton(b tea.MouseButton) event.Button {
	switch b {
	case tea.MouseButtonLeft:
		return event.ButtonPrimary
	case tea.MouseButtonRight:
		return event.ButtonSecondary
	case tea.MouseButtonMiddle:
		return event.ButtonMiddle
	default:
		return event.ButtonNone
	}
}

func keyEvent(msg tea.KeyMsg) event.Key {
	k := event.Key{Name: msg.String(), Pressed: true}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		k.Rune = msg.Runes[0]
	}
	if msg.Alt {
		k.Mods |= event.ModAlt
	}
	return k
}
