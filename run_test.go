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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	c := New(&out)
	if err := c.Run(strings.NewReader("10 2 +\r\n=\n\n1 2")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"12"}, splitOutput(out.String())); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{12, 1, 2}, c.Stack()); diff != "" {
		t.Errorf("stack mismatch (-want +got):\n%s", diff)
	}
}

func TestRunKeepsStateAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	c := New(&out)
	if err := c.Run(strings.NewReader("3 #\n")); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(strings.NewReader("4\n# 5 d\n")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"3", "5"}, splitOutput(out.String())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

var errBroken = errors.New("broken pipe")

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errBroken
}

func TestRunReportsWriteError(t *testing.T) {
	w := &failingWriter{}
	c := New(w)
	err := c.Run(strings.NewReader("1 =\n2 =\n"))
	if !errors.Is(err, errBroken) {
		t.Fatalf("Run: got %v, want %v", err, errBroken)
	}
	if !errors.Is(c.Err(), errBroken) {
		t.Errorf("Err: got %v", c.Err())
	}
	if w.writes != 1 {
		t.Errorf("writes after failure: %d", w.writes)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

func TestRunReportsReadError(t *testing.T) {
	c := New(&bytes.Buffer{})
	if err := c.Run(failingReader{}); !errors.Is(err, errBroken) {
		t.Fatalf("Run: got %v, want %v", err, errBroken)
	}
}

func TestDiagnostic(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{&UnrecognisedError{Char: 'x'}, `Unrecognised operator or operand "x".`},
		{&UnrecognisedError{Char: '"'}, `Unrecognised operator or operand """.`},
		{errBroken, "broken pipe"},
	}
	for _, tc := range testCases {
		if got := Diagnostic(tc.err); got != tc.want {
			t.Errorf("Diagnostic(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
