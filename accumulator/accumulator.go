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

package accumulator

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	calc "github.com/timburks/calc/types"
)

// ErrorDisplay is shown after a division by zero.
const ErrorDisplay = "Err"

// The Accumulator holds the running result of a calculation.
type Accumulator struct {
	input      string        // number as it is being typed
	operand    float64       // most recently committed operand
	hasOperand bool          // false until something has been committed
	value      float64       // running result
	pending    calc.Operator // operator waiting for its right-hand operand
	display    string        // text shown to the user
	tape       *Tape         // results, in the order they were displayed
}

func NewAccumulator() *Accumulator {
	return &Accumulator{tape: NewTape()}
}

func (a *Accumulator) GetDisplay() string {
	return a.display
}

func (a *Accumulator) GetPending() calc.Operator {
	return a.pending
}

func (a *Accumulator) GetInput() string {
	return a.input
}

func (a *Accumulator) GetValue() float64 {
	return a.value
}

func (a *Accumulator) GetTape() calc.Tape {
	return a.tape
}

// AppendDigit adds a digit to the number being typed.
// A lone "0" is replaced rather than extended.
func (a *Accumulator) AppendDigit(d int) {
	if d < 0 || d > 9 {
		log.Printf("ignoring digit %d", d)
		return
	}
	digit := strconv.Itoa(d)
	if a.input == "0" {
		a.input = digit
	} else {
		a.input += digit
	}
	a.display = a.input
}

func (a *Accumulator) AppendDecimalPoint() {
	if a.input == "" {
		a.input = "0."
		a.display = a.input
		return
	}
	if strings.Contains(a.input, ".") {
		return
	}
	a.input += "."
	a.display = a.input
}

func (a *Accumulator) ToggleSign() {
	if a.input == "" {
		return
	}
	if strings.HasPrefix(a.input, "-") {
		a.input = a.input[1:]
	} else {
		a.input = "-" + a.input
	}
	a.display = a.input
}

// commitInput moves the typed text into the operand. With nothing typed,
// the previous operand is kept so that operators can be pressed repeatedly.
func (a *Accumulator) commitInput() {
	if a.input == "" {
		return
	}
	a.operand = parseInput(a.input)
	a.hasOperand = true
	a.input = ""
}

func parseInput(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v // ±Inf or ±0
		}
		log.Printf("treating malformed input %q as 0", text)
		return 0.0
	}
	return v
}

// SetOperator records the next binary operator, first resolving any
// operation that is already pending. The first operator of a calculation
// seeds the running result with the committed operand.
func (a *Accumulator) SetOperator(op calc.Operator) {
	if op == calc.OperatorNone {
		return
	}
	a.commitInput()
	if a.pending == calc.OperatorNone {
		a.value = a.operand
	} else {
		a.resolvePending()
	}
	a.pending = op
}

// resolvePending combines the running result with the operand.
// Dividing by zero resets everything and shows ErrorDisplay.
func (a *Accumulator) resolvePending() {
	switch a.pending {
	case calc.OperatorAdd:
		a.value += a.operand
	case calc.OperatorSubtract:
		a.value -= a.operand
	case calc.OperatorMultiply:
		a.value *= a.operand
	case calc.OperatorDivide:
		if !a.hasOperand || a.operand == 0 {
			log.Printf("division by zero")
			a.Clear()
			a.display = ErrorDisplay
			a.tape.Record(ErrorDisplay)
			return
		}
		a.value /= a.operand
	}
	a.operand = a.value
	a.hasOperand = true
	a.show(FormatResult(a.value))
}

func (a *Accumulator) Equals() {
	a.commitInput()
	if a.pending == calc.OperatorNone {
		a.display = FormatResult(a.operand)
		return
	}
	a.resolvePending()
	a.pending = calc.OperatorNone
}

// Percent scales the operand by 1/100. Its result is shown in raw form,
// so whole numbers keep their trailing ".0".
func (a *Accumulator) Percent() {
	a.commitInput()
	a.operand *= 0.01
	a.hasOperand = true
	a.show(FormatRaw(a.operand))
}

func (a *Accumulator) Square() {
	a.commitInput()
	a.operand = a.operand * a.operand
	a.hasOperand = true
	a.show(FormatResult(a.operand))
}

// Log10 follows math.Log10 for non-positive operands (NaN, -Inf).
func (a *Accumulator) Log10() {
	a.commitInput()
	a.operand = log10(a.operand)
	a.hasOperand = true
	a.show(FormatResult(a.operand))
}

// log10 is exact for powers of ten, which math.Log10 is not.
func log10(v float64) float64 {
	l := math.Log10(v)
	if r := math.Round(l); math.Pow(10, r) == v {
		return r
	}
	return l
}

// Clear resets the evaluation state. The tape is kept.
func (a *Accumulator) Clear() {
	a.input = ""
	a.operand = 0.0
	a.hasOperand = false
	a.value = 0.0
	a.pending = calc.OperatorNone
	a.display = ""
}

func (a *Accumulator) show(text string) {
	a.display = text
	a.tape.Record(text)
}

func (a *Accumulator) Snapshot() calc.State {
	return calc.State{
		Input:      a.input,
		Operand:    a.operand,
		HasOperand: a.hasOperand,
		Value:      a.value,
		Pending:    a.pending,
		Display:    a.display,
	}
}

func (a *Accumulator) Restore(s calc.State) {
	a.input = s.Input
	a.operand = s.Operand
	a.hasOperand = s.HasOperand
	a.value = s.Value
	a.pending = s.Pending
	a.display = s.Display
}
