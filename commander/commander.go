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
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/timburks/calc/operations"
	calc "github.com/timburks/calc/types"
)

// The Commander converts user input into commands to the calculator.
type Commander struct {
	calculator  calc.Calculator
	mode        int              // calculator mode
	debug       bool             // debug mode displays information about events (key codes, etc)
	commandText string           // command as it is being typed on the command line
	lispText    string           // lisp command as it is being typed
	message     string           // status message
	tapeFile    string           // default destination of :w
	previous    calc.Operation   // last operation performed, available to repeat
	undo        []calc.Operation // stack of operations to undo
}

func NewCommander(c calc.Calculator) *Commander {
	return &Commander{calculator: c, mode: calc.ModeCalc, undo: make([]calc.Operation, 0)}
}

func (c *Commander) GetCalculator() calc.Calculator {
	return c.calculator
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) GetModeName() string {
	switch c.mode {
	case calc.ModeCalc:
		return "calc"
	case calc.ModeCommand:
		return "command"
	case calc.ModeLisp:
		return "lisp"
	case calc.ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) SetTapeFile(path string) {
	c.tapeFile = path
}

func (c *Commander) IsRunning() bool {
	return c.mode != calc.ModeQuit
}

// Perform performs an operation and saves it for undo and repetition.
func (c *Commander) Perform(op calc.Operation) {
	inverse := op.Perform(c.calculator)
	c.previous = op
	if inverse != nil {
		c.undo = append(c.undo, inverse)
	}
}

func (c *Commander) Repeat() {
	if c.previous != nil {
		inverse := c.previous.Perform(c.calculator)
		if inverse != nil {
			c.undo = append(c.undo, inverse)
		}
	}
}

func (c *Commander) PerformUndo() {
	if len(c.undo) > 0 {
		last := len(c.undo) - 1
		undo := c.undo[last]
		c.undo = c.undo[0:last]
		undo.Perform(c.calculator)
	}
}

func (c *Commander) ProcessEvent(event *calc.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case calc.EventKey:
		return c.processKey(event)
	case calc.EventInterrupt:
		c.mode = calc.ModeQuit
		return nil
	default:
		return nil
	}
}

// keyBindings maps calculator keys to the lisp expressions they evaluate.
var keyBindings = map[rune]string{
	'.': "(decimal-point)",
	',': "(decimal-point)",
	'~': "(toggle-sign)",
	'n': "(toggle-sign)",
	'+': "(add)",
	'-': "(subtract)",
	'*': "(multiply)",
	'x': "(multiply)",
	'/': "(divide)",
	'=': "(equals)",
	'%': "(percent)",
	's': "(square)",
	'l': "(log10)",
	'c': "(clear)",
	'C': "(clear)",
	'u': "(undo)",
	'r': "(repeat)",
	':': "(command-mode)",
	'(': "(lisp-mode)",
	'q': "(quit)",
}

func (c *Commander) processKeyCalcMode(event *calc.Event) error {
	key := event.Key
	ch := event.Ch

	var expression string
	if key != 0 {
		switch key {
		case calc.KeyEnter:
			expression = "(equals)"
		case calc.KeyEsc:
			expression = "(clear)"
		case calc.KeyCtrlC:
			expression = "(quit)"
		}
	}
	if ch != 0 {
		if ch >= '0' && ch <= '9' {
			expression = fmt.Sprintf("(digit %c)", ch)
		} else {
			expression = keyBindings[ch]
		}
	}
	if expression != "" {
		result := c.parseEval(expression)
		if strings.HasPrefix(result, "ERR") {
			c.message = result
		}
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *calc.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case calc.KeyEsc:
			c.mode = calc.ModeCalc
		case calc.KeyEnter:
			c.performCommand()
		case calc.KeyBackspace2:
			if len(c.commandText) > 0 {
				c.commandText = c.commandText[0 : len(c.commandText)-1]
			}
		case calc.KeySpace:
			c.commandText += " "
		}
	}
	if ch != 0 {
		c.commandText = c.commandText + string(ch)
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *calc.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case calc.KeyEsc:
			c.mode = calc.ModeCalc
		case calc.KeyEnter:
			c.message = c.parseEval(c.lispText)
			// if evaluation didn't change the mode, set it back to calc
			if c.mode == calc.ModeLisp {
				c.mode = calc.ModeCalc
			}
		case calc.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case calc.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) processKey(event *calc.Event) error {
	var err error
	switch c.mode {
	case calc.ModeCalc:
		err = c.processKeyCalcMode(event)
	case calc.ModeCommand:
		err = c.processKeyCommandMode(event)
	case calc.ModeLisp:
		err = c.processKeyLispMode(event)
	}
	return err
}

func (c *Commander) performCommand() {
	t := c.calculator.GetTape()

	parts := strings.Fields(c.commandText)
	if len(parts) > 0 {

		switch parts[0] {
		case "q", "quit":
			c.mode = calc.ModeQuit
			return
		case "clear":
			c.Perform(&operations.Clear{})
		case "reset":
			c.Perform(&operations.Clear{})
			t.Reset()
			c.message = ""
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.debug = true
				} else if parts[1] == "off" {
					c.debug = false
					c.message = ""
				}
			}
		case "w":
			filename := c.tapeFile
			if len(parts) == 2 {
				filename = parts[1]
			}
			if filename == "" {
				c.message = "no tape file"
				break
			}
			if err := t.WriteFile(filename); err != nil {
				log.Output(1, err.Error())
				c.message = err.Error()
			} else {
				c.message = fmt.Sprintf("wrote %d entries to %s", t.Len(), filename)
			}
		case "tape":
			c.message = fmt.Sprintf("%d entries", t.Len())
		case "display":
			c.message = c.calculator.GetDisplay()
		case "eval":
			if len(parts) == 2 {
				output, err := c.EvalFile(parts[1])
				if err != nil {
					c.message = err.Error()
				} else {
					c.message = output
				}
			}
		default:
			c.message = ""
			// a number is typed as if it had been entered key by key
			if _, err := strconv.ParseFloat(parts[0], 64); err == nil {
				if err = c.EnterNumber(parts[0]); err != nil {
					c.message = err.Error()
				}
			}
		}
	}
	c.commandText = ""
	c.mode = calc.ModeCalc
}

// EnterNumber types a number as if its keys had been pressed.
// A leading minus sign toggles the sign after the digits are typed.
func (c *Commander) EnterNumber(text string) error {
	digits := strings.TrimPrefix(text, "-")
	if digits == "" {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	for _, ch := range digits {
		if (ch < '0' || ch > '9') && ch != '.' {
			return fmt.Errorf("%w: %q", ErrInvalidNumber, text)
		}
	}
	for _, ch := range digits {
		if ch == '.' {
			c.Perform(&operations.DecimalPoint{})
		} else {
			c.Perform(&operations.Digit{Digit: int(ch - '0')})
		}
	}
	if len(digits) < len(text) {
		c.Perform(&operations.ToggleSign{})
	}
	return nil
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case calc.ModeCommand:
		line += ":" + c.commandText
	case calc.ModeLisp:
		line += c.lispText
	default:
		line += c.message
	}
	if len(line) > length {
		line = line[0:length]
	}
	return line
}
