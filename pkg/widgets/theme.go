package widgets

import (
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/graphics"
)

// Environment keys read by the widgets in this package.
var (
	TextColor         = env.NewKey("text_color", graphics.RGB(0x20, 0x20, 0x20))
	BackgroundColor   = env.NewKey("background_color", graphics.ColorWhite)
	ButtonColor       = env.NewKey("button.color", graphics.RGB(0xdd, 0xdd, 0xdd))
	ButtonHotColor    = env.NewKey("button.hot_color", graphics.RGB(0xcc, 0xcc, 0xee))
	ButtonActiveColor = env.NewKey("button.active_color", graphics.RGB(0x99, 0x99, 0xcc))
	// DefaultPadding is the inset used by ThemedPadding on every side.
	DefaultPadding = env.NewKey("padding", 8.0)
)
