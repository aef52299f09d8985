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

// Digit types one digit.
type Digit struct {
	operation
	Digit int
}

func (op *Digit) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.AppendDigit(op.Digit)
	return op.inverse()
}

type DecimalPoint struct {
	operation
}

func (op *DecimalPoint) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.AppendDecimalPoint()
	return op.inverse()
}

type ToggleSign struct {
	operation
}

func (op *ToggleSign) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	c.ToggleSign()
	return op.inverse()
}

// Clear resets the calculation. Clearing is undoable; the tape is not touched.
type Clear struct {
	operation
}

func (op *Clear) Perform(c calc.Calculator) calc.Operation {
	op.init(c)
	log.Printf("Clearing %q", c.GetDisplay())
	c.Clear()
	return op.inverse()
}
