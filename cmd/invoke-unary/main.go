// Invoke-unary evaluates one named one-operand function at the requested
// number of significant decimal digits and prints the result:
//
//	invoke-unary <function_name> <x> <precision>
//
// It exits 0 with the decimal rendering (or special token) on stdout, and 1
// with a diagnostic when the invocation is malformed or the name is not in
// the catalogue. Pass -list to print the catalogue names.
package main

import (
	"os"

	"github.com/mossy2100/bignumbers-oracle/internal/cli"
)

func main() {
	cmd := cli.Command{Prog: "invoke-unary", Arity: 1}
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
