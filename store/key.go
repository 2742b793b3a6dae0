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

package store

import (
	"bytes"
	"errors"
	"fmt"

	"m4o.io/osmkv/schema"
)

// Segments are escaped so that the encoded key sorts like the tuple
// (table, row, family, qualifier, visibility): a 0x00 byte is written as
// 0x00 0xff and every segment ends with 0x00 0x01.
const (
	escape     = 0x00
	escaped    = 0xff
	terminator = 0x01
)

// ErrInvalidKey is returned for keys that were not produced by EncodeKey.
var ErrInvalidKey = errors.New("invalid cell key")

func appendSegment(dst, seg []byte) []byte {
	for _, b := range seg {
		if b == escape {
			dst = append(dst, escape, escaped)
		} else {
			dst = append(dst, b)
		}
	}

	return append(dst, escape, terminator)
}

func readSegment(key []byte) ([]byte, []byte, error) {
	var seg []byte

	for i := 0; i < len(key); i++ {
		if key[i] != escape {
			seg = append(seg, key[i])

			continue
		}

		if i+1 == len(key) {
			break
		}

		switch key[i+1] {
		case escaped:
			seg = append(seg, escape)
			i++
		case terminator:
			return seg, key[i+2:], nil
		default:
			return nil, nil, fmt.Errorf("%w: bad escape 0x%02x", ErrInvalidKey, key[i+1])
		}
	}

	return nil, nil, fmt.Errorf("%w: unterminated segment", ErrInvalidKey)
}

// EncodeKey returns the sortable store key of a cell in table.
func EncodeKey(table string, c schema.Cell) []byte {
	key := make([]byte, 0, len(table)+len(c.Row)+len(c.Family)+len(c.Qualifier)+len(c.Visibility)+10)

	key = appendSegment(key, []byte(table))
	key = appendSegment(key, c.Row)
	key = appendSegment(key, []byte(c.Family))
	key = appendSegment(key, []byte(c.Qualifier))
	key = appendSegment(key, []byte(c.Visibility))

	return key
}

// DecodeKey is the inverse of EncodeKey.  The returned cell has no value.
func DecodeKey(key []byte) (string, schema.Cell, error) {
	var segs [5][]byte

	rest := key

	for i := range segs {
		var err error

		if segs[i], rest, err = readSegment(rest); err != nil {
			return "", schema.Cell{}, err
		}
	}

	if len(rest) != 0 {
		return "", schema.Cell{}, fmt.Errorf("%w: %d trailing bytes", ErrInvalidKey, len(rest))
	}

	return string(segs[0]), schema.Cell{
		Row:        bytes.Clone(segs[1]),
		Family:     string(segs[2]),
		Qualifier:  string(segs[3]),
		Visibility: string(segs[4]),
	}, nil
}

// TablePrefix returns the prefix shared by every key of table.
func TablePrefix(table string) []byte {
	return appendSegment(nil, []byte(table))
}

// RowPrefix returns the prefix shared by every key of one row of table.
func RowPrefix(table string, row []byte) []byte {
	return appendSegment(TablePrefix(table), row)
}
