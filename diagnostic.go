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

package calculator

import (
	"errors"
	"fmt"

	"github.com/yao-sq/calculator/internal/saturate"
	"github.com/yao-sq/calculator/internal/stack"
)

// UnrecognisedError is reported for a character that is neither part of a
// number nor an operator.
type UnrecognisedError struct {
	Char rune
}

func (e *UnrecognisedError) Error() string {
	return fmt.Sprintf("unrecognised operator or operand %q", e.Char)
}

// Diagnostic returns the line a session prints for err.
func Diagnostic(err error) string {
	var unrecognised *UnrecognisedError
	switch {
	case errors.Is(err, stack.ErrOverflow):
		return "Stack overflow."
	case errors.Is(err, stack.ErrUnderflow):
		return "Stack underflow."
	case errors.Is(err, saturate.ErrDivideByZero):
		return "Divide by 0."
	case errors.As(err, &unrecognised):
		return fmt.Sprintf("Unrecognised operator or operand \"%c\".", unrecognised.Char)
	}
	return err.Error()
}
