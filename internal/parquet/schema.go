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

// Package parquet exports entities to, and reads them back from, one Parquet
// file per entity kind.
package parquet

import (
	"encoding/json"
	"fmt"

	"github.com/apache/arrow/go/v14/arrow"

	"m4o.io/osmkv/model"
)

// File names inside an export directory.
const (
	NodesFile     = "nodes.parquet"
	WaysFile      = "ways.parquet"
	RelationsFile = "relations.parquet"
)

// Column names shared by every kind.
const (
	colID        = "id"
	colTags      = "tags"
	colVersion   = "version"
	colTimestamp = "timestamp"
	colChangeset = "changeset"
	colUID       = "uid"
	colUser      = "user"
	colVisible   = "visible"
	colLat       = "lat"
	colLon       = "lon"
	colRefs      = "refs"
	colMembers   = "members"
)

// Field positions of the shared columns.
const (
	fieldID = iota
	fieldTags
	fieldVersion
	fieldTimestamp
	fieldChangeset
	fieldUID
	fieldUser
	fieldVisible
	fieldKind
)

var memberType = arrow.StructOf(
	arrow.Field{Name: "type", Type: arrow.BinaryTypes.String},
	arrow.Field{Name: "ref", Type: arrow.PrimitiveTypes.Int64},
	arrow.Field{Name: "role", Type: arrow.BinaryTypes.String},
)

func commonFields() []arrow.Field {
	return []arrow.Field{
		{Name: colID, Type: arrow.PrimitiveTypes.Int64, Nullable: false},
		{Name: colTags, Type: arrow.BinaryTypes.String, Nullable: false},
		{Name: colVersion, Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: colTimestamp, Type: arrow.FixedWidthTypes.Timestamp_ms, Nullable: true},
		{Name: colChangeset, Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: colUID, Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: colUser, Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: colVisible, Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
	}
}

// Schema returns the Arrow schema of an entity kind's file.
func Schema(t model.EntityType) *arrow.Schema {
	fields := commonFields()

	switch t {
	case model.NODE:
		fields = append(fields,
			arrow.Field{Name: colLat, Type: arrow.PrimitiveTypes.Float64, Nullable: false},
			arrow.Field{Name: colLon, Type: arrow.PrimitiveTypes.Float64, Nullable: false})
	case model.WAY:
		fields = append(fields,
			arrow.Field{Name: colRefs, Type: arrow.ListOf(arrow.PrimitiveTypes.Int64), Nullable: false})
	default:
		fields = append(fields,
			arrow.Field{Name: colMembers, Type: arrow.ListOf(memberType), Nullable: false})
	}

	return arrow.NewSchema(fields, nil)
}

// FileName returns the file an entity kind is exported to.
func FileName(t model.EntityType) string {
	switch t {
	case model.NODE:
		return NodesFile
	case model.WAY:
		return WaysFile
	default:
		return RelationsFile
	}
}

// kindOf identifies a file's entity kind from its columns.
func kindOf(s *arrow.Schema) (model.EntityType, error) {
	switch {
	case s.HasField(colLat) && s.HasField(colLon):
		return model.NODE, nil
	case s.HasField(colRefs):
		return model.WAY, nil
	case s.HasField(colMembers):
		return model.RELATION, nil
	default:
		return 0, fmt.Errorf("unrecognized schema: %s", s)
	}
}

// TagsToJSON renders tags as a JSON object.
func TagsToJSON(tags map[string]string) string {
	if len(tags) == 0 {
		return "{}"
	}

	b, _ := json.Marshal(tags)

	return string(b)
}

// TagsFromJSON parses a tags column value.  An empty object yields nil.
func TagsFromJSON(s string) (map[string]string, error) {
	var tags map[string]string

	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("bad tags %q: %w", s, err)
	}

	if len(tags) == 0 {
		return nil, nil
	}

	return tags, nil
}
