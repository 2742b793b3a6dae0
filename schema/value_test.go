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
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"long", Long(-2), "fffffffffffffffe"},
		{"int", Int(-7), "fffffff9"},
		{"double", Double(51.5), "4049c00000000000"},
		{"string", Text("héllo"), hex.EncodeToString([]byte("héllo"))},
		{"empty string", Text(""), ""},
		{"true", Bool(true), "01"},
		{"false", Bool(false), "00"},
		{"time", Time(time.UnixMilli(1700000000123)), "0000018bcfe5687b"},
		{"longs", Longs([]int64{1, -2, 300}), "060203d80400"},
		{"no longs", Longs(nil), "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.value.Encode()
			assert.Equal(t, tt.want, hex.EncodeToString(b))

			v, err := Decode(tt.value.Kind, b)
			require.NoError(t, err)

			if tt.value.Kind == KindLongArray && len(tt.value.Longs) == 0 {
				assert.Empty(t, v.Longs)
			} else {
				assert.Equal(t, tt.value, v)
			}
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a := Time(time.Date(2024, 5, 6, 7, 8, 9, 10_000_000, time.FixedZone("x", 3600)))
	b := Time(time.Date(2024, 5, 6, 6, 8, 9, 10_000_000, time.UTC))

	assert.Equal(t, a.Encode(), b.Encode())
}

func TestDecodeTime(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)

	v, err := Decode(KindTime, Time(ts).Encode())
	require.NoError(t, err)

	assert.Equal(t, ts, v.Time())
	assert.Equal(t, "2024-05-06T07:08:09.123Z", v.String())
}

func TestDecodeLongsNegativeBlockCount(t *testing.T) {
	// one block of two items with a byte count, as other array writers emit
	v, err := Decode(KindLongArray, []byte{0x03, 0x04, 0x02, 0x04, 0x00})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, v.Longs)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		b    []byte
	}{
		{"short long", KindLong, []byte{1, 2, 3}},
		{"long int", KindInt, []byte{1, 2, 3, 4, 5}},
		{"short double", KindDouble, nil},
		{"short time", KindTime, []byte{0}},
		{"bool two bytes", KindBool, []byte{0, 1}},
		{"bool value", KindBool, []byte{2}},
		{"bad utf8", KindString, []byte{0xff, 0xfe}},
		{"unterminated longs", KindLongArray, []byte{0x02, 0x02}},
		{"trailing longs", KindLongArray, []byte{0x00, 0x01}},
		{"truncated varint", KindLongArray, []byte{0x80}},
		{"unknown kind", Kind(99), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.kind, tt.b)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", Long(42).String())
	assert.Equal(t, "-3", Int(-3).String())
	assert.Equal(t, "51.5", Double(51.5).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "[1,-2]", Longs([]int64{1, -2}).String())
	assert.Equal(t, "long[]", KindLongArray.String())
}
