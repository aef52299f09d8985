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
	"fmt"
	"os"
	"strings"
)

// A Tape records every result shown by an accumulator.
type Tape struct {
	entries []string
}

func NewTape() *Tape {
	return &Tape{entries: make([]string, 0)}
}

func (t *Tape) Record(entry string) {
	t.entries = append(t.entries, entry)
}

func (t *Tape) Entries() []string {
	return t.entries
}

func (t *Tape) Len() int {
	return len(t.entries)
}

func (t *Tape) Reset() {
	t.entries = make([]string, 0)
}

func (t *Tape) Bytes() []byte {
	if len(t.entries) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(t.entries, "\n") + "\n")
}

func (t *Tape) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tape file: %w", err)
	}
	defer f.Close()
	if _, err = f.Write(t.Bytes()); err != nil {
		return fmt.Errorf("writing tape to %s: %w", path, err)
	}
	return nil
}
