/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package calculator implements SRPN, a reverse Polish notation calculator
// with saturating 32-bit integer arithmetic and a bounded stack.
//
// A Calculator is one session. Lines go in through ProcessLine (or Run),
// single commands through ProcessCommand; every result and every
// diagnostic is written to the session's output as one line of text.
package calculator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"fortio.org/log"

	"github.com/yao-sq/calculator/internal/lexer"
	"github.com/yao-sq/calculator/internal/saturate"
	"github.com/yao-sq/calculator/internal/stack"
)

// Capacity is the number of operands the stack holds.
const Capacity = 23

// randomTable stands in for a random number generator so that 'r' is
// reproducible: these are the first outputs of glibc rand() with its
// default seed.
var randomTable = [...]int32{
	1804289383, 846930886, 1681692777, 1714636915, 1957747793, 424238335,
	719885386, 1649760492, 596516649, 1189641421, 1025202362, 1350490027,
	783368690, 1102520059, 2044897763, 1967513926, 1365180540, 1540383426,
	304089172, 1303455736, 35005211, 521595368,
}

// Calculator is one SRPN session: the operand stack, comment mode and the
// position in the random table. It is not safe for concurrent use.
type Calculator struct {
	out     io.Writer
	stack   *stack.Bounded
	comment bool
	cursor  int
	err     error
}

// New starts a session that writes its output to out.
func New(out io.Writer) *Calculator {
	return &Calculator{
		out:   out,
		stack: stack.New(Capacity),
	}
}

// Err returns the first error met while writing output, if any.
func (c *Calculator) Err() error { return c.err }

// InComment reports whether an unmatched '#' has opened a comment.
func (c *Calculator) InComment() bool { return c.comment }

// Stack returns the operands, bottom first.
func (c *Calculator) Stack() []int32 { return c.stack.All() }

// ProcessCommand executes a single command: a number, or one of the
// operators "+-*/%^=dr". Anything else is reported one character at a time.
func (c *Calculator) ProcessCommand(cmd string) {
	if len(cmd) == 1 {
		if op, ok := lexer.Lookup(cmd[0]); ok {
			c.operator(op)
			return
		}
	}
	if v, ok := parseOperand(cmd); ok {
		log.LogVf("push %d", v)
		c.check(c.stack.Push(v))
		return
	}
	for _, r := range cmd {
		c.check(&UnrecognisedError{Char: r})
	}
}

func (c *Calculator) operator(op lexer.Operator) {
	log.LogVf("operator %v, depth %d", op, c.stack.Len())
	c.check(c.apply(op))
}

func (c *Calculator) apply(op lexer.Operator) error {
	switch op {
	case lexer.Print:
		v, err := c.stack.Peek()
		if err != nil {
			return err
		}
		c.println(v)
		return nil

	case lexer.Display:
		items := c.stack.All()
		if len(items) == 0 {
			c.println(int32(math.MinInt32))
		}
		for _, v := range items {
			c.println(v)
		}
		return nil

	case lexer.Random:
		v := randomTable[c.cursor]
		c.cursor = (c.cursor + 1) % len(randomTable)
		return c.stack.Push(v)
	}

	if !op.Binary() {
		return fmt.Errorf("operator %v has no handler", op)
	}
	num1, num2, err := c.stack.Pop2()
	if err != nil {
		return err
	}
	result, err := binary(op, num1, num2)
	if err != nil {
		return err
	}
	return c.stack.Push(result)
}

func binary(op lexer.Operator, num1, num2 int32) (int32, error) {
	switch op {
	case lexer.Add:
		return saturate.Add(num1, num2), nil
	case lexer.Subtract:
		return saturate.Sub(num1, num2), nil
	case lexer.Multiply:
		return saturate.Mul(num1, num2), nil
	case lexer.Divide:
		return saturate.Div(num1, num2)
	case lexer.Modulo:
		return saturate.Mod(num1, num2)
	case lexer.Power:
		return saturate.Pow(num1, num2), nil
	}
	return 0, fmt.Errorf("operator %v is not binary", op)
}

// parseOperand accepts anything strconv.ParseFloat does, apart from the
// spelled-out infinities and NaN. Fractions truncate toward zero and
// out-of-range values saturate.
func parseOperand(s string) (int32, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(f) || (err == nil && math.IsInf(f, 0)) {
		return 0, false
	}
	return saturate.ClampFloat(f), true
}

// check turns a failed command into its diagnostic line.
func (c *Calculator) check(err error) {
	if err == nil {
		return
	}
	msg := Diagnostic(err)
	log.LogVf("diagnostic %q", msg)
	c.println(msg)
}

func (c *Calculator) println(v any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.out, v)
}
