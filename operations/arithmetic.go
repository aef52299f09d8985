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

package operations

import (
	"log"

	calc "github.com/timburks/calc/types"
)

// SetOperator presses a binary operator key.
type SetOperator struct {
	operation
	Operator calc.Operator
}

func (op *SetOperator) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	log.Printf("Operator %s after %q", op.Operator, c.GetDisplay())
	c.SetOperator(op.Operator)
	return op.inverse()
}

type Equals struct {
	operation
}

func (op *Equals) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.Equals()
	log.Printf("Equals %q", c.GetDisplay())
	return op.inverse()
}

// Unary functions apply to the current operand only.

type Percent struct {
	operation
}

func (op *Percent) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.Percent()
	log.Printf("Percent %q", c.GetDisplay())
	return op.inverse()
}

type Square struct {
	operation
}

func (op *Square) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.Square()
	log.Printf("Square %q", c.GetDisplay())
	return op.inverse()
}

type Log10 struct {
	operation
}

func (op *Log10) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.Log10()
	log.Printf("Log10 %q", c.GetDisplay())
	return op.inverse()
}
