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
	"maps"
	"slices"

	"m4o.io/osmkv/model"
)

// Cell is one unit written to the store.
type Cell struct {
	Row        []byte
	Family     string
	Qualifier  string
	Visibility string
	Value      []byte
}

// Mapper projects entities onto cells.  It is stateless apart from the
// visibility label it stamps on every cell, so one Mapper may be shared by
// any number of goroutines.
type Mapper struct {
	visibility string
}

// NewMapper returns a Mapper labelling every cell with visibility.
func NewMapper(visibility string) Mapper {
	return Mapper{visibility: visibility}
}

// Visibility returns the label applied to every cell.
func (m Mapper) Visibility() string {
	return m.visibility
}

// Map returns the cells of a single entity.
func (m Mapper) Map(e model.Entity) []Cell {
	return m.AppendCells(nil, e)
}

// AppendCells appends the cells of e to dst.  Cells come out in a fixed
// order: id, then the kind specific fields (lat and lon, refs, or members by
// position), then whichever metadata fields are present, then tags sorted by
// key.
func (m Mapper) AppendCells(dst []Cell, e model.Entity) []Cell {
	r := rowWriter{
		cells:      dst,
		row:        RowKey(e.GetID()),
		family:     CoreFamily(e.Kind()),
		visibility: m.visibility,
	}

	r.put(QualifierID, Long(int64(e.GetID())))

	switch v := e.(type) {
	case *model.Node:
		r.put(QualifierLatitude, Double(float64(v.Lat)))
		r.put(QualifierLongitude, Double(float64(v.Lon)))
	case *model.Way:
		refs := make([]int64, len(v.NodeIDs))
		for i, id := range v.NodeIDs {
			refs[i] = int64(id)
		}

		r.put(QualifierRefs, Longs(refs))
	case *model.Relation:
		for i, member := range v.Members {
			r.put(RoleQualifier(i), Text(member.Role))
			r.put(MemberQualifier(i), Long(int64(member.ID)))
			r.put(TypeQualifier(i), Text(member.Type.String()))
		}
	}

	if info := e.GetInfo(); info != nil {
		r.putInfo(info)
	}

	tags := e.GetTags()
	r.family = TagFamily(e.Kind())

	for _, k := range slices.Sorted(maps.Keys(tags)) {
		r.put(k, Text(tags[k]))
	}

	return r.cells
}

type rowWriter struct {
	cells      []Cell
	row        []byte
	family     string
	visibility string
}

func (r *rowWriter) put(qualifier string, v Value) {
	r.cells = append(r.cells, Cell{
		Row:        r.row,
		Family:     r.family,
		Qualifier:  qualifier,
		Visibility: r.visibility,
		Value:      v.Encode(),
	})
}

// putInfo writes the metadata fields that are present.  An absent visible
// flag writes nothing; it is never defaulted.
func (r *rowWriter) putInfo(info *model.Info) {
	if v, ok := info.Version.Get(); ok {
		r.put(QualifierVersion, Int(v))
	}

	if v, ok := info.Timestamp.Get(); ok {
		r.put(QualifierTimestamp, Time(v))
	}

	if v, ok := info.Changeset.Get(); ok {
		r.put(QualifierChangeset, Long(v))
	}

	if v, ok := info.UID.Get(); ok {
		r.put(QualifierUserID, Int(int32(v)))
	}

	if v, ok := info.User.Get(); ok {
		r.put(QualifierUserText, Text(v))
	}

	if v, ok := info.Visible.Get(); ok {
		r.put(QualifierVisible, Bool(v))
	}
}
