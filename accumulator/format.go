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
	"math"
	"strconv"
	"strings"
)

// FormatResult shows whole numbers without a fractional part and
// everything else in full.
func FormatResult(v float64) string {
	frac := v - math.Trunc(v)
	if frac != 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	raw := FormatRaw(v)
	if i := strings.Index(raw, "."); i >= 0 {
		return raw[:i]
	}
	return raw
}

// FormatRaw always writes a fractional part for finite values ("5.0").
func FormatRaw(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
