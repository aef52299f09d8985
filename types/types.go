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

package types

import "strings"

// Calculator modes
const (
	ModeCalc    = 0
	ModeCommand = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventInterrupt = 2
	EventOther     = 3
)

// Keys that carry no character.
type Key uint16

const (
	KeyUnsupported Key = iota
	KeyBackspace2
	KeyCtrlC
	KeyEnter
	KeyEsc
	KeySpace
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Size struct {
	Rows int
	Cols int
}

// An Operator is a binary operation waiting for its right-hand operand.
type Operator int

const (
	OperatorNone Operator = iota
	OperatorAdd
	OperatorSubtract
	OperatorMultiply
	OperatorDivide
)

func (op Operator) String() string {
	switch op {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	default:
		return ""
	}
}

// OperatorNamed accepts either a symbol ("+") or a name ("add").
func OperatorNamed(name string) (Operator, bool) {
	switch strings.ToLower(name) {
	case "+", "add":
		return OperatorAdd, true
	case "-", "sub", "subtract":
		return OperatorSubtract, true
	case "*", "x", "mul", "multiply":
		return OperatorMultiply, true
	case "/", "div", "divide":
		return OperatorDivide, true
	default:
		return OperatorNone, false
	}
}

// State is a complete copy of a calculator's evaluation state.
type State struct {
	Input      string
	Operand    float64
	HasOperand bool
	Value      float64
	Pending    Operator
	Display    string
}

type Calculator interface {
	AppendDigit(d int)
	AppendDecimalPoint()
	ToggleSign()
	SetOperator(op Operator)
	Equals()
	Percent()
	Square()
	Log10()
	Clear()

	GetDisplay() string
	GetPending() Operator
	GetInput() string
	GetValue() float64

	Snapshot() State
	Restore(s State)

	GetTape() Tape
}

type Tape interface {
	Record(entry string)
	Entries() []string
	Len() int
	Reset()
	Bytes() []byte
	WriteFile(path string) error
}

type Operation interface {
	Perform(c Calculator) Operation // performs the operation and returns its inverse
}

type Commander interface {
	SetMode(int)
	GetModeName() string
	IsRunning() bool
	ProcessEvent(event *Event) error
	GetMessageBarText(length int) string
}
