// Command matrix computes psychomatrix readings from the terminal.
//
//	matrix calc 15.05.1990 --gender female
//	matrix forecast 15.05.1990 --year 2030
//	matrix compat 15.05.1990 05.07.2005 --json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
