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

package parquet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/parquet"
	"github.com/apache/arrow/go/v14/parquet/file"
	"github.com/apache/arrow/go/v14/parquet/pqarrow"

	"m4o.io/osmkv/model"
)

const readChunkSize = 4096

// ReadDir reads every kind's file present in dir, nodes first, and calls fn
// for each entity in file order.
func ReadDir(ctx context.Context, dir string, fn func(model.Entity) error) error {
	for _, k := range []model.EntityType{model.NODE, model.WAY, model.RELATION} {
		path := filepath.Join(dir, FileName(k))

		err := ReadFile(ctx, path, fn)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// ReadFile reads one exported file.
func ReadFile(ctx context.Context, path string, fn func(model.Entity) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Read(ctx, f, fn); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Read decodes the entities of a Parquet file written by Writer.  The kind
// is recognized from the file's columns.
func Read(ctx context.Context, r parquet.ReaderAtSeeker, fn func(model.Entity) error) error {
	pf, err := file.NewParquetReader(r)
	if err != nil {
		return fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pf.Close()

	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return fmt.Errorf("failed to create arrow reader: %w", err)
	}

	tbl, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}
	defer tbl.Release()

	kind, err := kindOf(tbl.Schema())
	if err != nil {
		return err
	}

	tr := array.NewTableReader(tbl, readChunkSize)
	defer tr.Release()

	for tr.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec := tr.Record()

		c, err := newColumns(rec, kind)
		if err != nil {
			return err
		}

		for i := 0; i < int(rec.NumRows()); i++ {
			e, err := c.entity(i)
			if err != nil {
				return err
			}

			if err := fn(e); err != nil {
				return err
			}
		}
	}

	return nil
}

type columns struct {
	kind      model.EntityType
	id        *array.Int64
	tags      *array.String
	version   *array.Int32
	timestamp *array.Timestamp
	changeset *array.Int64
	uid       *array.Int32
	user      *array.String
	visible   *array.Boolean
	lat       *array.Float64
	lon       *array.Float64
	list      *array.List
}

func newColumns(rec arrow.Record, kind model.EntityType) (*columns, error) {
	c := &columns{kind: kind}

	var err error

	bind := func(name string, dst any) {
		if err != nil {
			return
		}

		err = column(rec, name, dst)
	}

	bind(colID, &c.id)
	bind(colTags, &c.tags)
	bind(colVersion, &c.version)
	bind(colTimestamp, &c.timestamp)
	bind(colChangeset, &c.changeset)
	bind(colUID, &c.uid)
	bind(colUser, &c.user)
	bind(colVisible, &c.visible)

	switch kind {
	case model.NODE:
		bind(colLat, &c.lat)
		bind(colLon, &c.lon)
	case model.WAY:
		bind(colRefs, &c.list)
	default:
		bind(colMembers, &c.list)
	}

	return c, err
}

// column binds the named column of rec to dst, a pointer to a typed array.
func column(rec arrow.Record, name string, dst any) error {
	idx := rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return fmt.Errorf("missing column %q", name)
	}

	col := rec.Column(idx[0])

	ok := false

	switch p := dst.(type) {
	case **array.Int64:
		*p, ok = col.(*array.Int64)
	case **array.Int32:
		*p, ok = col.(*array.Int32)
	case **array.Float64:
		*p, ok = col.(*array.Float64)
	case **array.String:
		*p, ok = col.(*array.String)
	case **array.Boolean:
		*p, ok = col.(*array.Boolean)
	case **array.Timestamp:
		*p, ok = col.(*array.Timestamp)
	case **array.List:
		*p, ok = col.(*array.List)
	}

	if !ok {
		return fmt.Errorf("column %q has type %s", name, col.DataType())
	}

	return nil
}

func (c *columns) entity(i int) (model.Entity, error) {
	id := model.ID(c.id.Value(i))

	tags, err := TagsFromJSON(c.tags.Value(i))
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", c.kind, id, err)
	}

	info := c.info(i)

	switch c.kind {
	case model.NODE:
		return &model.Node{
			ID:   id,
			Tags: tags,
			Info: info,
			Lat:  model.Degrees(c.lat.Value(i)),
			Lon:  model.Degrees(c.lon.Value(i)),
		}, nil
	case model.WAY:
		refs, ok := c.list.ListValues().(*array.Int64)
		if !ok {
			return nil, fmt.Errorf("refs column has type %s", c.list.DataType())
		}

		start, end := c.list.ValueOffsets(i)

		nodeIDs := make([]model.ID, 0, end-start)
		for j := start; j < end; j++ {
			nodeIDs = append(nodeIDs, model.ID(refs.Value(int(j))))
		}

		return &model.Way{ID: id, Tags: tags, Info: info, NodeIDs: nodeIDs}, nil
	default:
		members, err := c.members(i)
		if err != nil {
			return nil, fmt.Errorf("relation %d: %w", id, err)
		}

		return &model.Relation{ID: id, Tags: tags, Info: info, Members: members}, nil
	}
}

func (c *columns) members(i int) ([]model.Member, error) {
	st, ok := c.list.ListValues().(*array.Struct)
	if !ok || st.NumField() != 3 {
		return nil, fmt.Errorf("members column has type %s", c.list.DataType())
	}

	types, ok1 := st.Field(0).(*array.String)
	refs, ok2 := st.Field(1).(*array.Int64)
	roles, ok3 := st.Field(2).(*array.String)

	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("members column has type %s", c.list.DataType())
	}

	start, end := c.list.ValueOffsets(i)
	members := make([]model.Member, 0, end-start)

	for j := int(start); j < int(end); j++ {
		t, err := model.ParseEntityType(types.Value(j))
		if err != nil {
			return nil, err
		}

		members = append(members, model.Member{ID: model.ID(refs.Value(j)), Type: t, Role: roles.Value(j)})
	}

	return members, nil
}

// info returns nil when every metadata column is null.
func (c *columns) info(i int) *model.Info {
	var info model.Info

	if c.version.IsValid(i) {
		info.Version = model.Some(c.version.Value(i))
	}

	if c.timestamp.IsValid(i) {
		info.Timestamp = model.Some(time.UnixMilli(int64(c.timestamp.Value(i))).UTC())
	}

	if c.changeset.IsValid(i) {
		info.Changeset = model.Some(c.changeset.Value(i))
	}

	if c.uid.IsValid(i) {
		info.UID = model.Some(model.UID(c.uid.Value(i)))
	}

	if c.user.IsValid(i) {
		info.User = model.Some(c.user.Value(i))
	}

	if c.visible.IsValid(i) {
		info.Visible = model.Some(c.visible.Value(i))
	}

	if info == (model.Info{}) {
		return nil
	}

	return &info
}
