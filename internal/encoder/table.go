// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package encoder

import "sort"

const (
	notUsed = ""
)

// Strings collects the distinct strings referenced by a block.
type Strings struct {
	tbl map[string]struct{}
}

// Table is the sorted string table of a block.  Index 0 is always the empty
// string, which dense nodes use as their tag delimiter.
type Table struct {
	tbl     map[string]int32
	strings []string
}

func NewStrings() *Strings {
	return &Strings{tbl: make(map[string]struct{})}
}

func (s *Strings) Add(value string) {
	s.tbl[value] = struct{}{}
}

func (s *Strings) CalcTable() *Table {
	delete(s.tbl, notUsed)

	strings := make([]string, 0, len(s.tbl)+1)

	for k := range s.tbl {
		strings = append(strings, k)
	}

	sort.Strings(strings)

	strings = append([]string{notUsed}, strings...)

	tbl := make(map[string]int32, len(strings))
	for i, k := range strings {
		tbl[k] = int32(i)
	}

	return &Table{
		tbl:     tbl,
		strings: strings,
	}
}

// IndexOf returns the index of a string added before the table was
// calculated.
func (t *Table) IndexOf(value string) int32 {
	index, ok := t.tbl[value]
	if !ok {
		panic("string " + value + " is not in the table")
	}

	return index
}

// AsArray returns the table in index order, as written to a StringTable.
func (t *Table) AsArray() [][]byte {
	arr := make([][]byte, len(t.strings))
	for i, s := range t.strings {
		arr[i] = []byte(s)
	}

	return arr
}
