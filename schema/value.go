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

package schema

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrInvalidValue is returned when cell bytes cannot be decoded as the kind
// their column calls for.
var ErrInvalidValue = errors.New("invalid value")

// Kind is the semantic type of a cell value.
type Kind uint8

// Value kinds.
const (
	KindLong Kind = iota + 1
	KindInt
	KindDouble
	KindString
	KindBool
	KindTime
	KindLongArray
)

const (
	longSize   = 8
	intSize    = 4
	doubleSize = 8
	boolSize   = 1
)

func (k Kind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindLongArray:
		return "long[]"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged cell value.  Which field is meaningful depends on Kind:
// Num for long, int and time (epoch milliseconds), Float for double, Text
// for string, Flag for bool and Longs for long arrays.
type Value struct {
	Kind  Kind
	Num   int64
	Float float64
	Text  string
	Flag  bool
	Longs []int64
}

// Long returns a 64-bit integer value.
func Long(v int64) Value { return Value{Kind: KindLong, Num: v} }

// Int returns a 32-bit integer value.
func Int(v int32) Value { return Value{Kind: KindInt, Num: int64(v)} }

// Double returns a floating point value.
func Double(v float64) Value { return Value{Kind: KindDouble, Float: v} }

// Text returns a UTF-8 string value.
func Text(v string) Value { return Value{Kind: KindString, Text: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{Kind: KindBool, Flag: v} }

// Time returns an absolute time value with millisecond precision.
func Time(v time.Time) Value { return Value{Kind: KindTime, Num: v.UnixMilli()} }

// Longs returns an ordered list of 64-bit integers.
func Longs(v []int64) Value { return Value{Kind: KindLongArray, Longs: v} }

// Time returns the value of a time kind as a UTC time.
func (v Value) Time() time.Time {
	return time.UnixMilli(v.Num).UTC()
}

// Encode serializes the value.  Every kind has exactly one encoding:
//
//	long   8 bytes, big endian two's complement
//	int    4 bytes, big endian two's complement
//	double 8 bytes, big endian IEEE 754
//	string UTF-8 bytes
//	bool   1 byte, 1 or 0
//	time   8 bytes, big endian milliseconds since the epoch
//	long[] zig-zag varint blocks: count, items, then a 0 terminator
func (v Value) Encode() []byte {
	switch v.Kind {
	case KindLong, KindTime:
		return binary.BigEndian.AppendUint64(make([]byte, 0, longSize), uint64(v.Num))
	case KindInt:
		return binary.BigEndian.AppendUint32(make([]byte, 0, intSize), uint32(int32(v.Num)))
	case KindDouble:
		return binary.BigEndian.AppendUint64(make([]byte, 0, doubleSize), math.Float64bits(v.Float))
	case KindString:
		return []byte(v.Text)
	case KindBool:
		if v.Flag {
			return []byte{1}
		}

		return []byte{0}
	case KindLongArray:
		return encodeLongs(v.Longs)
	default:
		panic(fmt.Sprintf("encode of %s", v.Kind))
	}
}

func encodeLongs(vals []int64) []byte {
	var buf []byte

	if len(vals) > 0 {
		buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(int64(len(vals))))
		for _, v := range vals {
			buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(v))
		}
	}

	return protowire.AppendVarint(buf, 0)
}

// Decode is the inverse of Encode for the given kind.
func Decode(kind Kind, b []byte) (Value, error) {
	switch kind {
	case KindLong, KindTime:
		if len(b) != longSize {
			return Value{}, sizeError(kind, longSize, b)
		}

		return Value{Kind: kind, Num: int64(binary.BigEndian.Uint64(b))}, nil
	case KindInt:
		if len(b) != intSize {
			return Value{}, sizeError(kind, intSize, b)
		}

		return Int(int32(binary.BigEndian.Uint32(b))), nil
	case KindDouble:
		if len(b) != doubleSize {
			return Value{}, sizeError(kind, doubleSize, b)
		}

		return Double(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
	case KindString:
		if !utf8.Valid(b) {
			return Value{}, fmt.Errorf("%w: string is not UTF-8", ErrInvalidValue)
		}

		return Text(string(b)), nil
	case KindBool:
		if len(b) != boolSize || b[0] > 1 {
			return Value{}, fmt.Errorf("%w: bool %x", ErrInvalidValue, b)
		}

		return Bool(b[0] == 1), nil
	case KindLongArray:
		return decodeLongs(b)
	default:
		return Value{}, fmt.Errorf("%w: unknown kind %s", ErrInvalidValue, kind)
	}
}

func decodeLongs(b []byte) (Value, error) {
	vals := []int64{}

	for {
		n, err := readZigZag(&b)
		if err != nil {
			return Value{}, err
		}

		if n == 0 {
			break
		}

		// a negative count is followed by the block size in bytes
		if n < 0 {
			n = -n

			if _, err := readZigZag(&b); err != nil {
				return Value{}, err
			}
		}

		for range n {
			v, err := readZigZag(&b)
			if err != nil {
				return Value{}, err
			}

			vals = append(vals, v)
		}
	}

	if len(b) != 0 {
		return Value{}, fmt.Errorf("%w: %d trailing bytes after long array", ErrInvalidValue, len(b))
	}

	return Longs(vals), nil
}

func readZigZag(b *[]byte) (int64, error) {
	v, n := protowire.ConsumeVarint(*b)
	if n < 0 {
		return 0, fmt.Errorf("%w: long array: %w", ErrInvalidValue, protowire.ParseError(n))
	}

	*b = (*b)[n:]

	return protowire.DecodeZigZag(v), nil
}

func sizeError(kind Kind, want int, b []byte) error {
	return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidValue, kind, want, len(b))
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindLong, KindInt:
		return strconv.FormatInt(v.Num, 10)
	case KindDouble:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindString:
		return v.Text
	case KindBool:
		return strconv.FormatBool(v.Flag)
	case KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case KindLongArray:
		parts := make([]string, len(v.Longs))
		for i, l := range v.Longs {
			parts[i] = strconv.FormatInt(l, 10)
		}

		return "[" + strings.Join(parts, ",") + "]"
	default:
		return v.Kind.String()
	}
}
