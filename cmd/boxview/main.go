// Command boxview lays out, paints and drives a demo widget tree in the
// terminal or into a PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/boxlayout/cmd/boxview/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
