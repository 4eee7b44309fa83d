// Package testing provides a widget testing harness for boxlayout trees.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := bltest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(widgets.Center(widgets.NewTextButton("submit", "Submit", layout.EdgeInsetsAll(8))))
//
//	    action, err := tester.Tap(bltest.ByText("Submit"))
//	    require.NoError(t, err)
//	    assert.Equal(t, event.Clicked{ID: "submit"}, action)
//	}
//
// Every error report raised while a tester is alive lands in its
// ErrorRecorder, so contract violations can be asserted on directly.
//
// # Probes
//
// Probe is a leaf that records the constraints, events and paint origins
// it receives, for checking what a container hands to its children.
//
// # Snapshot Testing
//
// Capture and compare tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	BOXLAYOUT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import bltest "github.com/go-drift/boxlayout/pkg/testing"
package testing
