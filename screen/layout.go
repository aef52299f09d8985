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

package screen

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DisplayLine right-aligns text in a line of the given width and puts
// the operator in the first column. Text that does not fit is truncated
// on the left so that the least significant digits stay visible. Lines
// narrower than three columns hold only text.
func DisplayLine(operator, text string, width int) string {
	if width <= 0 {
		return ""
	}
	prefix := ""
	if width > 2 {
		prefix = runewidth.FillRight(operator, 2)
	}
	room := width - runewidth.StringWidth(prefix)
	for runewidth.StringWidth(text) > room {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
	return prefix + runewidth.FillLeft(text, room)
}

// TapeLines returns the last rows entries, each right-aligned to width.
func TapeLines(entries []string, rows, width int) []string {
	if len(entries) > rows {
		entries = entries[len(entries)-rows:]
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, runewidth.FillLeft(runewidth.Truncate(entry, width, ""), width))
	}
	return lines
}
