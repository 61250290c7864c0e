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
	"fortio.org/log"

	"github.com/yao-sq/calculator/internal/lexer"
)

// ProcessLine executes one line of input. Matched "#...#" pairs are
// removed first; a lone '#' toggles comment mode, which lasts across lines.
// Operators glued together without spaces run in precedence order rather
// than left to right, see lexer.Order.
func (c *Calculator) ProcessLine(line string) {
	lex := lexer.New(lexer.StripComments(line))
	for tok, ok := lex.Next(); ok; tok, ok = lex.Next() {
		if tok.IsCommentDelim() {
			c.comment = !c.comment
			continue
		}
		if c.comment {
			log.LogVf("skip %v", tok)
			continue
		}
		switch tok.Kind {
		case lexer.Operators:
			for _, op := range lexer.Order(tok.Text) {
				c.operator(op)
			}
		default:
			c.ProcessCommand(tok.Text)
		}
	}
}
