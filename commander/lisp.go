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
	"log"

	"github.com/steelseries/golisp"

	"github.com/timburks/calc/operations"
	calc "github.com/timburks/calc/types"
)

var (
	ErrInvalidDigit    = errors.New("digit must be an integer from 0 to 9")
	ErrInvalidNumber   = errors.New("not a number")
	ErrUnknownOperator = errors.New("unknown operator")
)

// The commander that is currently evaluating lisp.
// Primitives are global to golisp, so they act on this one.
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("digit", "1", digitImpl)
	golisp.MakePrimitiveFunction("enter", "1", enterImpl)
	golisp.MakePrimitiveFunction("operator", "1", operatorImpl)

	performing := map[string]func() calc.Operation{
		"decimal-point": func() calc.Operation { return &operations.DecimalPoint{} },
		"toggle-sign":   func() calc.Operation { return &operations.ToggleSign{} },
		"add":           func() calc.Operation { return &operations.SetOperator{Operator: calc.OperatorAdd} },
		"subtract":      func() calc.Operation { return &operations.SetOperator{Operator: calc.OperatorSubtract} },
		"multiply":      func() calc.Operation { return &operations.SetOperator{Operator: calc.OperatorMultiply} },
		"divide":        func() calc.Operation { return &operations.SetOperator{Operator: calc.OperatorDivide} },
		"equals":        func() calc.Operation { return &operations.Equals{} },
		"percent":       func() calc.Operation { return &operations.Percent{} },
		"square":        func() calc.Operation { return &operations.Square{} },
		"log10":         func() calc.Operation { return &operations.Log10{} },
		"clear":         func() calc.Operation { return &operations.Clear{} },
	}
	for name, create := range performing {
		create := create
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			active.Perform(create())
			return display(), nil
		})
	}

	commands := map[string]func(c *Commander){
		"undo":         (*Commander).PerformUndo,
		"repeat":       (*Commander).Repeat,
		"command-mode": func(c *Commander) { c.mode = calc.ModeCommand; c.commandText = "" },
		"lisp-mode":    func(c *Commander) { c.mode = calc.ModeLisp; c.lispText = "(" },
		"quit":         func(c *Commander) { c.mode = calc.ModeQuit },
		"reset-tape":   func(c *Commander) { c.calculator.GetTape().Reset() },
		"readout":      func(c *Commander) {},
	}
	for name, command := range commands {
		command := command
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			command(active)
			return display(), nil
		})
	}

	golisp.MakePrimitiveFunction("pending", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(active.calculator.GetPending().String()), nil
	})
	golisp.MakePrimitiveFunction("tape-length", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(active.calculator.GetTape().Len())), nil
	})
}

func display() *golisp.Data {
	return golisp.StringWithValue(active.calculator.GetDisplay())
}

func digitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	var d int
	switch {
	case golisp.IntegerP(val):
		d = int(golisp.IntegerValue(val))
	case golisp.FloatP(val):
		d = int(golisp.FloatValue(val))
	default:
		return nil, ErrInvalidDigit
	}
	if d < 0 || d > 9 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}
	active.Perform(&operations.Digit{Digit: d})
	return display(), nil
}

func enterImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	var text string
	switch {
	case golisp.StringP(val):
		text = golisp.StringValue(val)
	case golisp.IntegerP(val), golisp.FloatP(val):
		text = golisp.String(val)
	default:
		return nil, ErrInvalidNumber
	}
	if err := active.EnterNumber(text); err != nil {
		return nil, err
	}
	return display(), nil
}

func operatorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, ErrUnknownOperator
	}
	op, ok := calc.OperatorNamed(golisp.StringValue(val))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, golisp.StringValue(val))
	}
	active.Perform(&operations.SetOperator{Operator: op})
	return display(), nil
}

// parseEval evaluates a lisp expression and returns its printed value.
// Errors are logged and returned as text prefixed with "ERR".
func (c *Commander) parseEval(command string) string {
	active = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "ERR " + err.Error()
	}
	if c.debug {
		log.Printf("SEXPR %+v", golisp.String(value))
	}
	return printed(value)
}

// Eval evaluates every top-level expression in source and returns
// the printed value of the last one.
func (c *Commander) Eval(source string) (string, error) {
	active = c
	value, err := golisp.ParseAndEvalAll(source)
	if err != nil {
		return "", fmt.Errorf("evaluating script: %w", err)
	}
	return printed(value), nil
}

func (c *Commander) EvalFile(path string) (string, error) {
	active = c
	value, err := golisp.ProcessFile(path)
	if err != nil {
		return "", fmt.Errorf("evaluating %s: %w", path, err)
	}
	return printed(value), nil
}

func printed(value *golisp.Data) string {
	if golisp.StringP(value) {
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}
