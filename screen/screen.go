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
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	calc "github.com/timburks/calc/types"
)

const title = " calc "

// The Screen draws the state of a Calculator.
type Screen struct {
	size calc.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(c calc.Calculator, m calc.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	s.RenderDisplay(c)
	s.RenderTape(c)
	s.RenderInfoBar(c, m)
	s.RenderMessageBar(m)
	termbox.HideCursor()
	termbox.Flush()
}

// RenderDisplay draws the display right-aligned on the first row,
// with the pending operator at the left edge.
func (s *Screen) RenderDisplay(c calc.Calculator) {
	line := DisplayLine(c.GetPending().String(), c.GetDisplay(), s.size.Cols)
	s.drawText(0, 0, line, termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlack)
}

// RenderTape draws the most recent tape entries, newest at the bottom.
func (s *Screen) RenderTape(c calc.Calculator) {
	rows := s.size.Rows - 4
	if rows <= 0 {
		return
	}
	entries := TapeLines(c.GetTape().Entries(), rows, s.size.Cols)
	top := 2 + rows - len(entries)
	for i, entry := range entries {
		s.drawText(0, top+i, entry, termbox.ColorYellow, termbox.ColorBlack)
	}
}

func (s *Screen) RenderInfoBar(c calc.Calculator, m calc.Commander) {
	finalText := fmt.Sprintf(" %s %d ", m.GetModeName(), c.GetTape().Len())
	text := title
	for runewidth.StringWidth(text) < s.size.Cols-runewidth.StringWidth(finalText) {
		text = text + " "
	}
	text += finalText
	s.drawText(0, s.size.Rows-2, text, termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(m calc.Commander) {
	line := m.GetMessageBarText(s.size.Cols)
	s.drawText(0, s.size.Rows-1, line, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) drawText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *calc.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &calc.Event{
		Type: eventType(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func eventType(t termbox.EventType) int {
	switch t {
	case termbox.EventKey:
		return calc.EventKey
	case termbox.EventResize:
		return calc.EventResize
	case termbox.EventInterrupt:
		return calc.EventInterrupt
	default:
		return calc.EventOther
	}
}

func key(k termbox.Key) calc.Key {
	switch k {
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return calc.KeyBackspace2
	case termbox.KeyCtrlC:
		return calc.KeyCtrlC
	case termbox.KeyEnter:
		return calc.KeyEnter
	case termbox.KeyEsc:
		return calc.KeyEsc
	case termbox.KeySpace:
		return calc.KeySpace
	case 0:
		return 0
	default:
		return calc.KeyUnsupported
	}
}
