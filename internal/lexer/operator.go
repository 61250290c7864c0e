package lexer

import "sort"

// Operator is one of the calculator's single-character commands.
// The constants are declared in execution priority: inside a glued run
// a lower Rank executes first.
type Operator int

const (
	Random   Operator = iota // r
	Print                    // =
	Power                    // ^
	Divide                   // /
	Multiply                 // *
	Modulo                   // %
	Add                      // +
	Subtract                 // -
	Display                  // d
)

// CommentDelim toggles comment mode. It is not an Operator and has no rank.
const CommentDelim = '#'

var symbols = [...]byte{
	Random:   'r',
	Print:    '=',
	Power:    '^',
	Divide:   '/',
	Multiply: '*',
	Modulo:   '%',
	Add:      '+',
	Subtract: '-',
	Display:  'd',
}

func (op Operator) Rank() int { return int(op) }

func (op Operator) Symbol() byte { return symbols[op] }

func (op Operator) String() string { return string(symbols[op]) }

// Binary reports whether op pops two operands and pushes one result.
func (op Operator) Binary() bool {
	switch op {
	case Power, Divide, Multiply, Modulo, Add, Subtract:
		return true
	}
	return false
}

// Lookup maps a symbol to its Operator.
func Lookup(c byte) (Operator, bool) {
	for i, s := range symbols {
		if s == c {
			return Operator(i), true
		}
	}
	return 0, false
}

// Less is the total order used to disambiguate glued operators.
func Less(a, b Operator) bool { return a.Rank() < b.Rank() }

// Order splits a run of glued operator characters and returns them in the
// order they execute. The sort is stable, so repeats keep their textual
// order. Characters without a rank (a glued '#') are dropped.
func Order(run string) []Operator {
	ops := make([]Operator, 0, len(run))
	for i := 0; i < len(run); i++ {
		if op, ok := Lookup(run[i]); ok {
			ops = append(ops, op)
		}
	}
	sort.SliceStable(ops, func(i, j int) bool { return Less(ops[i], ops[j]) })
	return ops
}
