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

// Package accumulator implements the evaluation engine of calc.
// An accumulator chains binary operators left to right with no
// precedence: each operator press resolves the operation already
// pending before recording the new one. All state lives in the
// Accumulator; a front end only calls its actions and renders
// the display text it produces.
package accumulator
