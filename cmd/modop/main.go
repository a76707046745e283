// Command modop evaluates modular arithmetic and combinatorics from the shell.
//
//	modop -m 5 -t int div 3 4
//	modop -m 1000000007 pow 3 45
//	modop -m 13 comb 5 2
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/modop/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
