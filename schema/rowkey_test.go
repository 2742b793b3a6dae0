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

	"github.com/stretchr/testify/assert"

	"m4o.io/osmkv/model"
)

func TestRowKey(t *testing.T) {
	tests := []struct {
		id   model.ID
		want string
	}{
		{0, "206f47e5179226730cca2867c83ffaf1"},
		{1, "48dc3bf3a88b9d3de9239c2215c626fd"},
		{5, "58deddb09bdc1cece9b1c4dabe955b55"},
		{9, "9f8a48b7881c01eca7ac22dbf454a77b"},
		{42, "0f0f332b32ad30817a20b7e19065e835"},
		{-1, "4c78a72b22339ec5615c238d191494b2"},
		{123456789, "46a564dc457a00a0ba312c562c0c25b0"},
	}

	for _, tt := range tests {
		key := RowKey(tt.id)

		assert.Len(t, key, RowKeySize)
		assert.Equal(t, tt.want, hex.EncodeToString(key), "id %d", tt.id)
	}
}

func TestRowKeyIgnoresKind(t *testing.T) {
	m := NewMapper("public")

	node := m.Map(&model.Node{ID: 7})
	way := m.Map(&model.Way{ID: 7})

	assert.Equal(t, node[0].Row, way[0].Row)
	assert.NotEqual(t, node[0].Family, way[0].Family)
}
