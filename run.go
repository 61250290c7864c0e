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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Run feeds every line of r to ProcessLine until end of input. It returns
// nil at EOF, or the first read or write error.
func (c *Calculator) Run(r io.Reader) error {
	lr := newLineReader(r)
	for {
		line, ok, err := lr.next()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if !ok {
			break
		}
		c.ProcessLine(line)
		if c.err != nil {
			break
		}
	}
	if c.err != nil {
		return fmt.Errorf("writing output: %w", c.err)
	}
	return nil
}

type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line without its terminator. A last line with no
// newline is still returned.
func (lr *lineReader) next() (line string, ok bool, err error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if len(s) == 0 && err == io.EOF {
		return "", false, nil
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}
