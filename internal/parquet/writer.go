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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/memory"
	"github.com/apache/arrow/go/v14/parquet"
	"github.com/apache/arrow/go/v14/parquet/compress"
	"github.com/apache/arrow/go/v14/parquet/pqarrow"

	"m4o.io/osmkv/model"
)

// DefaultBatchSize is the number of rows buffered before a record batch is
// written.
const DefaultBatchSize = 10000

// Writer exports entities into a directory, one file per kind.  Files are
// created on the first entity of their kind.
type Writer struct {
	dir       string
	batchSize int
	tables    [3]*tableWriter
	rows      [3]int64
}

// NewWriter creates dir if needed and returns a Writer flushing every
// batchSize rows.
func NewWriter(dir string, batchSize int) (*Writer, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Writer{dir: dir, batchSize: batchSize}, nil
}

// Write appends an entity to its kind's file.
func (w *Writer) Write(e model.Entity) error {
	k := e.Kind()

	t := w.tables[k]
	if t == nil {
		var err error

		t, err = newTableWriter(filepath.Join(w.dir, FileName(k)), Schema(k), w.batchSize)
		if err != nil {
			return err
		}

		w.tables[k] = t
	}

	appendCommon(t.builder, e)

	switch v := e.(type) {
	case *model.Node:
		t.builder.Field(fieldKind).(*array.Float64Builder).Append(float64(v.Lat))
		t.builder.Field(fieldKind + 1).(*array.Float64Builder).Append(float64(v.Lon))
	case *model.Way:
		lb := t.builder.Field(fieldKind).(*array.ListBuilder)
		vb := lb.ValueBuilder().(*array.Int64Builder)

		lb.Append(true)

		for _, id := range v.NodeIDs {
			vb.Append(int64(id))
		}
	case *model.Relation:
		lb := t.builder.Field(fieldKind).(*array.ListBuilder)
		sb := lb.ValueBuilder().(*array.StructBuilder)

		lb.Append(true)

		for _, m := range v.Members {
			sb.Append(true)
			sb.FieldBuilder(0).(*array.StringBuilder).Append(m.Type.String())
			sb.FieldBuilder(1).(*array.Int64Builder).Append(int64(m.ID))
			sb.FieldBuilder(2).(*array.StringBuilder).Append(m.Role)
		}
	}

	w.rows[k]++

	return t.row()
}

// Rows returns the number of rows written for a kind.
func (w *Writer) Rows(t model.EntityType) int64 {
	return w.rows[t]
}

// Files returns the paths of the files created so far.
func (w *Writer) Files() []string {
	var files []string

	for k, t := range w.tables {
		if t != nil {
			files = append(files, filepath.Join(w.dir, FileName(model.EntityType(k))))
		}
	}

	return files
}

// Close flushes and closes every file.
func (w *Writer) Close() error {
	var errs []error

	for _, t := range w.tables {
		if t != nil {
			errs = append(errs, t.close())
		}
	}

	return errors.Join(errs...)
}

func appendCommon(b *array.RecordBuilder, e model.Entity) {
	b.Field(fieldID).(*array.Int64Builder).Append(int64(e.GetID()))
	b.Field(fieldTags).(*array.StringBuilder).Append(TagsToJSON(e.GetTags()))

	var info model.Info
	if i := e.GetInfo(); i != nil {
		info = *i
	}

	version := b.Field(fieldVersion).(*array.Int32Builder)
	if v, ok := info.Version.Get(); ok {
		version.Append(v)
	} else {
		version.AppendNull()
	}

	timestamp := b.Field(fieldTimestamp).(*array.TimestampBuilder)
	if v, ok := info.Timestamp.Get(); ok {
		timestamp.Append(arrow.Timestamp(v.UnixMilli()))
	} else {
		timestamp.AppendNull()
	}

	changeset := b.Field(fieldChangeset).(*array.Int64Builder)
	if v, ok := info.Changeset.Get(); ok {
		changeset.Append(v)
	} else {
		changeset.AppendNull()
	}

	uid := b.Field(fieldUID).(*array.Int32Builder)
	if v, ok := info.UID.Get(); ok {
		uid.Append(int32(v))
	} else {
		uid.AppendNull()
	}

	user := b.Field(fieldUser).(*array.StringBuilder)
	if v, ok := info.User.Get(); ok {
		user.Append(v)
	} else {
		user.AppendNull()
	}

	visible := b.Field(fieldVisible).(*array.BooleanBuilder)
	if v, ok := info.Visible.Get(); ok {
		visible.Append(v)
	} else {
		visible.AppendNull()
	}
}

type tableWriter struct {
	file      *os.File
	writer    *pqarrow.FileWriter
	builder   *array.RecordBuilder
	batchSize int
	count     int
}

func newTableWriter(path string, schema *arrow.Schema, batchSize int) (*tableWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	writerProps := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Zstd),
		parquet.WithDictionaryDefault(false),
	)

	writer, err := pqarrow.NewFileWriter(schema, f, writerProps, pqarrow.DefaultWriterProps())
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("cannot create %s: %w", path, err)
	}

	return &tableWriter{
		file:      f,
		writer:    writer,
		builder:   array.NewRecordBuilder(memory.DefaultAllocator, schema),
		batchSize: batchSize,
	}, nil
}

func (w *tableWriter) row() error {
	w.count++
	if w.count >= w.batchSize {
		return w.flush()
	}

	return nil
}

func (w *tableWriter) flush() error {
	if w.count == 0 {
		return nil
	}

	rec := w.builder.NewRecord()
	defer rec.Release()

	w.count = 0

	return w.writer.Write(rec)
}

func (w *tableWriter) close() error {
	defer w.builder.Release()

	err := w.flush()

	if cerr := w.writer.Close(); err == nil {
		err = cerr
	}

	// the Parquet writer may already have closed the file
	if cerr := w.file.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}

	return err
}
