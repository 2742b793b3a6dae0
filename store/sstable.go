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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"

	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/table"
	"github.com/syndtr/goleveldb/leveldb/util"

	"m4o.io/osmkv/schema"
)

// SSTableExt is the extension of files written by SSTableDir.
const SSTableExt = ".sst"

var sstableOptions = opt.Options{
	BlockSize:   16 * opt.KiB,
	Compression: opt.SnappyCompression,
	Strict:      opt.NoStrict,
}

type record struct {
	key, value []byte
}

// WriteSSTable writes cells of table as one sorted table.  When two cells
// share a key the later one wins.
func WriteSSTable(w io.Writer, tbl string, cells []schema.Cell) error {
	records := make([]record, len(cells))
	for i, c := range cells {
		records[i] = record{key: EncodeKey(tbl, c), value: c.Value}
	}

	slices.SortStableFunc(records, func(a, b record) int {
		return bytes.Compare(a.key, b.key)
	})

	tw := table.NewWriter(w, &sstableOptions)

	for i, r := range records {
		if i+1 < len(records) && bytes.Equal(r.key, records[i+1].key) {
			continue
		}

		if err := tw.Append(r.key, r.value); err != nil {
			return fmt.Errorf("cannot append cell: %w", err)
		}
	}

	return tw.Close()
}

// ScanSSTable calls fn for every cell of a table written by WriteSSTable,
// in key order, along with the name of the cell's table.
func ScanSSTable(r io.ReaderAt, size int64, fn func(tbl string, c schema.Cell) error) error {
	pool := util.NewBufferPool(sstableOptions.BlockSize)
	defer pool.Close()

	tr, err := table.NewReader(r, size, storage.FileDesc{}, nil, pool, &sstableOptions)
	if err != nil {
		return fmt.Errorf("cannot open sorted table: %w", err)
	}
	defer tr.Release()

	it := tr.NewIterator(nil, nil)
	defer it.Release()

	for it.Next() {
		tbl, c, err := DecodeKey(it.Key())
		if err != nil {
			return err
		}

		c.Value = bytes.Clone(it.Value())

		if err := fn(tbl, c); err != nil {
			return err
		}
	}

	return it.Error()
}

// SSTableDir writes every block to its own sorted table file in a directory,
// ready for bulk loading.  Files appear atomically: each is written under a
// temporary name and renamed once complete.
type SSTableDir struct {
	dir string
	seq atomic.Int64
}

var (
	_ Writer  = (*SSTableDir)(nil)
	_ Scanner = (*SSTableDir)(nil)
)

// NewSSTableDir creates dir if needed.
func NewSSTableDir(dir string) (*SSTableDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	return &SSTableDir{dir: dir}, nil
}

// Write writes cells to the next numbered file.  Empty blocks produce no
// file.
func (d *SSTableDir) Write(ctx context.Context, tbl string, cells []schema.Cell) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(cells) == 0 {
		return nil
	}

	name := filepath.Join(d.dir, fmt.Sprintf("%s-%08d%s", tbl, d.seq.Add(1), SSTableExt))

	f, err := os.CreateTemp(d.dir, ".tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}()

	if err := WriteSSTable(f, tbl, cells); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}

// Files returns the table files written so far in name order.
func (d *SSTableDir) Files() ([]string, error) {
	return filepath.Glob(filepath.Join(d.dir, "*"+SSTableExt))
}

// Scan reads the directory's tables one file at a time, in file name order,
// and calls fn for the cells of table.  Keys are ordered within a file only,
// so a row written by two blocks appears once per file.
func (d *SSTableDir) Scan(ctx context.Context, table string, fn ScanFunc) error {
	files, err := d.Files()
	if err != nil {
		return err
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := scanFile(name, func(tbl string, c schema.Cell) error {
			if tbl != table {
				return nil
			}

			return fn(c)
		}); err != nil {
			return err
		}
	}

	return nil
}

func scanFile(name string, fn func(tbl string, c schema.Cell) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	if err := ScanSSTable(f, fi.Size(), fn); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}
