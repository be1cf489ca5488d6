// Command arith applies one integer operator to two operands and prints the result.
//
// Usage:
//
//	arith -op subtract 29 7
//	arith -op multiply -- -1 5
//	arith -op '*' -checked 4611686018427387904 2
//
// Negative operands must follow "--" so they are not read as flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/merylmarasigan/learning-CICD/pkg/arith"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

// lookupOp is a variable so tests can patch operator resolution.
var lookupOp = arith.Lookup

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		glog.Errorf("arith: %v", err)
		fmt.Fprintln(os.Stderr, err)
	}
	glog.Flush()
	os.Exit(exitCode(err))
}

func newFlagSet(opName *string, checked *bool) *flag.FlagSet {
	fs := flag.NewFlagSet("arith", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(opName, "op", "add", "operator: "+strings.Join(arith.Names(), ", ")+" or its symbol")
	fs.BoolVar(checked, "checked", false, "fail instead of wrapping on integer overflow")
	// Carry glog's -v, -logtostderr and friends, which it registers on the default set.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, f.Name, f.Usage)
	})
	return fs
}

func run(args []string, stdout io.Writer) error {
	var (
		opName  string
		checked bool
	)
	fs := newFlagSet(&opName, &checked)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("%w: expected 2 operands, got %d", errUsage, fs.NArg())
	}

	op, err := lookupOp(opName)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	glog.V(1).Infof("Selected operator %s (checked=%t)", op.Name, checked)

	a, err := parseOperand(fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := parseOperand(fs.Arg(1))
	if err != nil {
		return err
	}
	glog.V(2).Infof("Operands a=%d b=%d", a, b)

	var result int
	if checked {
		result, err = op.ApplyChecked(a, b)
		if err != nil {
			return err
		}
	} else {
		result = op.Apply(a, b)
	}

	_, err = fmt.Fprintln(stdout, result)
	return err
}

func parseOperand(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid operand %q", errUsage, s)
	}
	return n, nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		return exitFailure
	}
}
