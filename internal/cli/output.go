package cli

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
)

// Leading symbol for error lines
const errorSymbol = "✗"

// printError prints an error message to w, in red unless noColor is set.
func printError(w io.Writer, noColor bool, err error) {
	c := fcolor.New(fcolor.FgRed)
	if noColor {
		c.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", c.Sprint(errorSymbol+" Error:"), err)
}

// printUsage prints the usage text after a usage error.
func printUsage(w io.Writer, usage string) {
	fmt.Fprintln(w)
	fmt.Fprint(w, usage)
}
