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

	"github.com/spaolacci/murmur3"

	"m4o.io/osmkv/model"
)

// RowKeySize is the width of every row key.
const RowKeySize = 16

const rowKeySeed = 1

// RowKey hashes an entity id into its row key: MurmurHash3 x64 128 with seed
// 1 over the id's eight little-endian bytes, emitted as the two 64-bit halves
// in little-endian order.
//
// The entity kind is not part of the hash, so a node, a way and a relation
// with the same id share a row.  Their cells never collide because each kind
// writes to its own column families.
func RowKey(id model.ID) []byte {
	var in [8]byte

	binary.LittleEndian.PutUint64(in[:], uint64(id))

	h1, h2 := murmur3.Sum128WithSeed(in[:], rowKeySeed)

	key := make([]byte, 0, RowKeySize)
	key = binary.LittleEndian.AppendUint64(key, h1)
	key = binary.LittleEndian.AppendUint64(key, h2)

	return key
}
