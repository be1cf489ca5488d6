package arith

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOp is returned by Lookup for names that match no operator.
var ErrUnknownOp = errors.New("unknown operator")

// Op describes one binary operator.
type Op struct {
	Name         string
	Symbol       string
	Apply        func(a, b int) int
	ApplyChecked func(a, b int) (int, error)
}

var ops = []Op{
	{Name: "add", Symbol: "+", Apply: Add, ApplyChecked: AddChecked},
	{Name: "subtract", Symbol: "-", Apply: Subtract, ApplyChecked: SubtractChecked},
	{Name: "multiply", Symbol: "*", Apply: Multiply, ApplyChecked: MultiplyChecked},
}

// Ops returns the supported operators in a fixed order.
func Ops() []Op {
	out := make([]Op, len(ops))
	copy(out, ops)
	return out
}

// Lookup finds an operator by name or symbol. Names are matched case-insensitively.
func Lookup(name string) (Op, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, op := range ops {
		if key == op.Name || key == op.Symbol {
			return op, nil
		}
	}
	return Op{}, fmt.Errorf("%q: %w", name, ErrUnknownOp)
}

// Names returns the operator names, for usage messages.
func Names() []string {
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	return names
}
