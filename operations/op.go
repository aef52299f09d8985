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
	calc "github.com/timburks/calc/types"
)

type operation struct {
	Before calc.State // state before the operation was performed
}

func (op *operation) init(c calc.Calculator) {
	op.Before = c.Snapshot()
}

func (op *operation) inverse() calc.Operation {
	return &Restore{State: op.Before}
}

// Restore replaces the calculator state with a saved copy.
// Its inverse restores the state it replaced.
type Restore struct {
	State calc.State
}

func (op *Restore) Perform(c calc.Calculator) calc.Operation {
	current := c.Snapshot()
	c.Restore(op.State)
	return &Restore{State: current}
}
