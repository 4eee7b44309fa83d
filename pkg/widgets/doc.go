// Package widgets provides the stock nodes for building widget trees.
//
// Every type here implements [layout.WidgetInner] and owns its children
// through [layout.WidgetBase] wrappers, so children never see their own
// position and parents place them exactly once per layout pass.
//
// # Decorators
//
// Padding is the reference single-child decorator. It shrinks the incoming
// constraints by its insets, lays out the child, places it at (left, top)
// and reports the child size plus the insets:
//
//	widgets.UniformPadding(10, child)
//	widgets.SymmetricPadding(24, 12, child)
//	widgets.ThemedPadding(child) // reads DefaultPadding from the env
//
// Align and Center loosen the constraints and place the child by alignment
// factors.
//
// # Containers
//
// Row and Column lay children out along one axis:
//
//	widgets.Row(widgets.NewLabel("Name"), widgets.HSpace(8), field)
//	widgets.Column(header, body).WithSpacing(4)
//
// # Leaves
//
// SizedBox, Label and Button are the leaf collaborators. Button reports
// event.Clicked when a primary press is released inside it.
//
// # Theming
//
// Colors and the default padding come from the [env.Env] passed to every
// call. The keys are declared in theme.go and may be overridden from a YAML
// theme loaded with env.LoadFile.
package widgets
