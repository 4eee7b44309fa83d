//go:build debug

package layout

const debugAssertions = true
