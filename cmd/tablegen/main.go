// tablegen generates the synthetic table dataset: for every combination
// of row count 2..9, column count 2..7 and filling mode (sentences or
// timestamps), it writes a matching PDF/CSV pair into ./tables/.
//
// The sweep is fixed; tablegen takes no arguments. A LaTeX installation
// providing pdflatex is required.
package main

import (
	"context"
	"fmt"
	"os"

	tableset "github.com/porticus-lab/go-table-dataset"
)

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: tablegen")
		fmt.Fprintln(os.Stderr, "tablegen takes no arguments; it always runs the full fixed sweep.")
		os.Exit(2)
	}

	s := tableset.NewSweep()
	if err := s.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("dataset written to %s/\n", tableset.DefaultOutputDir)
}
