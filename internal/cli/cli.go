// Package cli implements the invoker entry points shared by the oracle
// commands. The argument contract is strictly positional: operands may
// begin with '-', so arguments are never treated as flags.
package cli

import (
	"errors"
	"fmt"
	"io"

	oracle "github.com/mossy2100/bignumbers-oracle"
)

// Exit statuses of the invoker commands.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Command describes one invoker entry point: the program name it reports in
// its usage line and the number of operands it accepts.
type Command struct {
	Prog  string
	Arity int
}

// Usage returns the one-line usage text for the command.
func (c Command) Usage() string {
	switch c.Arity {
	case 1:
		return "Usage: " + c.Prog + " <function_name> <x> <precision>"
	case 2:
		return "Usage: " + c.Prog + " <function_name> <x> <y> <precision>"
	default:
		panic("oracle: command with unsupported arity")
	}
}

// Run executes one invocation and returns the process exit status.
//
// The harness contract routes output by failure class: a result or special
// token goes to stdout with ExitSuccess; a wrong argument count prints the
// usage line to stdout; an unknown function prints the not-found line,
// containing the requested name, to stdout; unparseable operand or
// precision text prints a diagnostic to stderr. Every failure returns
// ExitFailure, and nothing is evaluated unless every argument validates.
//
// As the sole argument, -list prints the sorted catalogue names for the
// command's arity to stdout.
func (c Command) Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 1 && args[0] == "-list" {
		for _, name := range c.names() {
			fmt.Fprintln(stdout, name)
		}
		return ExitSuccess
	}
	if len(args) != c.Arity+2 {
		fmt.Fprintln(stdout, c.Usage())
		return ExitFailure
	}
	name := args[0]
	digits, err := oracle.ParsePrecision(args[len(args)-1])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	var out string
	switch c.Arity {
	case 1:
		out, err = oracle.InvokeUnary(name, args[1], digits)
	case 2:
		out, err = oracle.InvokeBinary(name, args[1], args[2], digits)
	default:
		panic("oracle: command with unsupported arity")
	}
	if err != nil {
		var unknown *oracle.UnknownFunctionError
		if errors.As(err, &unknown) {
			fmt.Fprintln(stdout, err)
			return ExitFailure
		}
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	fmt.Fprintln(stdout, out)
	return ExitSuccess
}

func (c Command) names() []string {
	if c.Arity == 2 {
		return oracle.BinaryNames()
	}
	return oracle.UnaryNames()
}
