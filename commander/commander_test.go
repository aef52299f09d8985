//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package commander

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akedrou/textdiff"
	. "github.com/onsi/gomega"

	"github.com/timburks/calc/accumulator"
	calc "github.com/timburks/calc/types"
)

func setup() *Commander {
	return NewCommander(accumulator.NewAccumulator())
}

// typeKeys sends each character as a key event; '\n' is sent as Enter.
func typeKeys(t *testing.T, c *Commander, keys string) {
	for _, ch := range keys {
		event := &calc.Event{Type: calc.EventKey, Ch: ch}
		if ch == '\n' {
			event = &calc.Event{Type: calc.EventKey, Key: calc.KeyEnter}
		}
		if err := c.ProcessEvent(event); err != nil {
			t.Errorf("ProcessEvent failed: %+v", err)
		}
	}
}

func TestKeysChainOperators(t *testing.T) {
	c := setup()
	typeKeys(t, c, "10+5*2=")
	if display := c.GetCalculator().GetDisplay(); display != "30" {
		t.Errorf("Unexpected display: '%s'", display)
	}
}

func TestEnterAndEscape(t *testing.T) {
	c := setup()
	typeKeys(t, c, "5+3\n")
	if display := c.GetCalculator().GetDisplay(); display != "8" {
		t.Errorf("Unexpected display: '%s'", display)
	}
	c.ProcessEvent(&calc.Event{Type: calc.EventKey, Key: calc.KeyEsc})
	if display := c.GetCalculator().GetDisplay(); display != "" {
		t.Errorf("Display not cleared: '%s'", display)
	}
}

func TestDivisionByZeroKeys(t *testing.T) {
	c := setup()
	typeKeys(t, c, "6/0=")
	if display := c.GetCalculator().GetDisplay(); display != "Err" {
		t.Errorf("Unexpected display: '%s'", display)
	}
	if pending := c.GetCalculator().GetPending(); pending != calc.OperatorNone {
		t.Errorf("Operator still pending: %v", pending)
	}
}

// Each line of the transcript holds a key and the display after it.
func TestTranscript(t *testing.T) {
	c := setup()
	expected := `1 1
2 12
. 12.
5 12.5
+ 12.5
7 7
. 7.
5 7.5
* 20
2 2
= 40
s 1600
u 40
r 1600
c 
/ 
= Err
% 0.0
`
	var actual strings.Builder
	for _, ch := range "12.5+7.5*2=surc/=%" {
		typeKeys(t, c, string(ch))
		fmt.Fprintf(&actual, "%c %s\n", ch, c.GetCalculator().GetDisplay())
	}
	if actual.String() != expected {
		t.Errorf("Unexpected transcript:\n%s", textdiff.Unified("expected", "actual", expected, actual.String()))
	}
}

func TestUndoToEmpty(t *testing.T) {
	c := setup()
	typeKeys(t, c, "4.2~*3=")
	typeKeys(t, c, strings.Repeat("u", 10))
	if state := c.GetCalculator().Snapshot(); state != (calc.State{}) {
		t.Errorf("Unexpected state after undo: %+v", state)
	}
}

func TestCommandMode(t *testing.T) {
	g := NewWithT(t)
	c := setup()
	typeKeys(t, c, "2*21=")
	typeKeys(t, c, ":tape\n")
	g.Expect(c.GetMode()).To(Equal(calc.ModeCalc))
	g.Expect(c.GetMessage()).To(Equal("1 entries"))

	typeKeys(t, c, ":12.5\n=")
	g.Expect(c.GetCalculator().GetDisplay()).To(Equal("12.5"))

	typeKeys(t, c, ":-3\n*2=")
	g.Expect(c.GetCalculator().GetDisplay()).To(Equal("-6"))

	typeKeys(t, c, ":display\n")
	g.Expect(c.GetMessage()).To(Equal("-6"))

	typeKeys(t, c, ":clear\n")
	g.Expect(c.GetCalculator().GetDisplay()).To(BeEmpty())
	g.Expect(c.GetCalculator().GetTape().Len()).To(Equal(2))

	typeKeys(t, c, ":reset\n")
	g.Expect(c.GetCalculator().GetTape().Len()).To(BeZero())

	typeKeys(t, c, ":q\n")
	g.Expect(c.IsRunning()).To(BeFalse())
}

func TestCommandLineEditing(t *testing.T) {
	c := setup()
	typeKeys(t, c, ":tapx")
	c.ProcessEvent(&calc.Event{Type: calc.EventKey, Key: calc.KeyBackspace2})
	typeKeys(t, c, "e")
	if text := c.GetMessageBarText(80); text != ":tape" {
		t.Errorf("Unexpected message bar: '%s'", text)
	}
	if text := c.GetMessageBarText(3); text != ":ta" {
		t.Errorf("Message bar not truncated: '%s'", text)
	}
	c.ProcessEvent(&calc.Event{Type: calc.EventKey, Key: calc.KeyEsc})
	if c.GetMode() != calc.ModeCalc {
		t.Errorf("Unexpected mode: %s", c.GetModeName())
	}
}

func TestWriteTape(t *testing.T) {
	c := setup()
	path := filepath.Join(t.TempDir(), "tape.txt")
	typeKeys(t, c, "3+4=s")
	typeKeys(t, c, ":w "+path+"\n")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if string(b) != "7\n49\n" {
		t.Errorf("Unexpected tape: %q", string(b))
	}
	if c.GetMessage() != "wrote 2 entries to "+path {
		t.Errorf("Unexpected message: '%s'", c.GetMessage())
	}
}

func TestWriteTapeDefaultFile(t *testing.T) {
	c := setup()
	typeKeys(t, c, ":w\n")
	if c.GetMessage() != "no tape file" {
		t.Errorf("Unexpected message: '%s'", c.GetMessage())
	}
	path := filepath.Join(t.TempDir(), "default.txt")
	c.SetTapeFile(path)
	typeKeys(t, c, "9s:w\n")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Tape not written: %+v", err)
	}
}

func TestLispMode(t *testing.T) {
	c := setup()
	typeKeys(t, c, "(enter 7)\n")
	if c.GetMode() != calc.ModeCalc {
		t.Errorf("Unexpected mode: %s", c.GetModeName())
	}
	typeKeys(t, c, `(operator "*")`+"\n")
	typeKeys(t, c, "6=")
	if display := c.GetCalculator().GetDisplay(); display != "42" {
		t.Errorf("Unexpected display: '%s'", display)
	}
	typeKeys(t, c, "(pending)\n")
	if c.GetMessage() != "" {
		t.Errorf("Unexpected pending operator: '%s'", c.GetMessage())
	}
}

func TestLispErrors(t *testing.T) {
	c := setup()
	typeKeys(t, c, "(digit 12)\n")
	if !strings.HasPrefix(c.GetMessage(), "ERR") {
		t.Errorf("Expected an error, got '%s'", c.GetMessage())
	}
	typeKeys(t, c, `(operator "^")`+"\n")
	if !strings.HasPrefix(c.GetMessage(), "ERR") {
		t.Errorf("Expected an error, got '%s'", c.GetMessage())
	}
	if display := c.GetCalculator().GetDisplay(); display != "" {
		t.Errorf("Failed command changed the display: '%s'", display)
	}
}

func TestEval(t *testing.T) {
	g := NewWithT(t)
	c := setup()
	output, err := c.Eval(`
(enter "12.5")
(multiply)
(digit 2)
(equals)
`)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(output).To(Equal("25"))
	g.Expect(c.GetCalculator().GetTape().Entries()).To(Equal([]string{"25"}))

	output, err = c.Eval("(undo) (readout)")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(output).To(Equal("2"))
}

func TestEvalRunsEveryExpression(t *testing.T) {
	c := setup()
	output, err := c.Eval("(enter 3) (square)) (enter 7)")
	if err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if output != "7" {
		t.Errorf("Unexpected output: '%s'", output)
	}
	if input := c.GetCalculator().GetInput(); input != "7" {
		t.Errorf("Expression after the extra paren was skipped, input is '%s'", input)
	}
	if entries := c.GetCalculator().GetTape().Entries(); len(entries) != 1 || entries[0] != "9" {
		t.Errorf("Unexpected tape: %q", entries)
	}
}

func TestEvalFile(t *testing.T) {
	c := setup()
	path := filepath.Join(t.TempDir(), "script.lisp")
	script := "(enter 100)\n(log10)\n(repeat)\n"
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	output, err := c.EvalFile(path)
	if err != nil {
		t.Fatalf("EvalFile failed: %+v", err)
	}
	if output != "0.3010299956639812" {
		t.Errorf("Unexpected output: '%s'", output)
	}
	if _, err = c.EvalFile(filepath.Join(t.TempDir(), "missing.lisp")); err == nil {
		t.Errorf("Expected an error for a missing script")
	}
}

func TestEnterNumber(t *testing.T) {
	c := setup()
	for _, text := range []string{"", "-", "1e5", "abc"} {
		if err := c.EnterNumber(text); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("EnterNumber(%q) returned %v", text, err)
		}
	}
	if err := c.EnterNumber("-0.25"); err != nil {
		t.Errorf("EnterNumber failed: %+v", err)
	}
	if input := c.GetCalculator().GetInput(); input != "-0.25" {
		t.Errorf("Unexpected input: '%s'", input)
	}
}

func TestInterrupt(t *testing.T) {
	c := setup()
	c.ProcessEvent(&calc.Event{Type: calc.EventInterrupt})
	if c.IsRunning() {
		t.Errorf("Commander still running after interrupt")
	}
}
