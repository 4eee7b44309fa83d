//go:build !debug

package layout

// debugAssertions turns protocol violations into panics. Build with
// -tags debug to enable it.
const debugAssertions = false
