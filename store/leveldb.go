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

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"m4o.io/osmkv/schema"
)

// LevelDB stores cells in an embedded goleveldb database.
type LevelDB struct {
	db   *leveldb.DB
	sync bool
}

var _ Writer = (*LevelDB)(nil)

// LevelDBOptions configures OpenLevelDB.
type LevelDBOptions struct {
	// Sync flushes every batch to disk before Write returns.
	Sync bool

	// Compress enables snappy compression of table blocks.
	Compress bool

	// WriteBufferMB is the size of the memtable; zero keeps goleveldb's
	// default.
	WriteBufferMB int
}

// OpenLevelDB opens or creates a database in dir.
func OpenLevelDB(dir string, o LevelDBOptions) (*LevelDB, error) {
	opts := &opt.Options{
		Compression: opt.NoCompression,
	}

	if o.Compress {
		opts.Compression = opt.SnappyCompression
	}

	if o.WriteBufferMB > 0 {
		opts.WriteBuffer = o.WriteBufferMB * opt.MiB
	}

	db, err := leveldb.OpenFile(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot open store %s: %w", dir, err)
	}

	return &LevelDB{db: db, sync: o.Sync}, nil
}

// NewMemLevelDB returns a database held in memory.
func NewMemLevelDB() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}

	return &LevelDB{db: db}, nil
}

// Write commits cells as one atomic batch.
func (s *LevelDB) Write(ctx context.Context, table string, cells []schema.Cell) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := new(leveldb.Batch)

	for _, c := range cells {
		batch.Put(EncodeKey(table, c), c.Value)
	}

	if err := s.db.Write(batch, &opt.WriteOptions{Sync: s.sync}); err != nil {
		return fmt.Errorf("cannot write %d cells: %w", len(cells), err)
	}

	return nil
}

// Scan calls fn for every cell of table in key order.
func (s *LevelDB) Scan(ctx context.Context, table string, fn ScanFunc) error {
	return s.scan(ctx, util.BytesPrefix(TablePrefix(table)), fn)
}

// Row returns the cells of one row of table in key order.
func (s *LevelDB) Row(ctx context.Context, table string, row []byte) ([]schema.Cell, error) {
	var cells []schema.Cell

	err := s.scan(ctx, util.BytesPrefix(RowPrefix(table, row)), func(c schema.Cell) error {
		cells = append(cells, c)

		return nil
	})

	return cells, err
}

// ScanRows calls fn with the cells of each row of table in key order.
func (s *LevelDB) ScanRows(ctx context.Context, table string, fn func(row []schema.Cell) error) error {
	return ScanRows(ctx, s, table, fn)
}

func (s *LevelDB) scan(ctx context.Context, r *util.Range, fn ScanFunc) error {
	it := s.db.NewIterator(r, nil)
	defer it.Release()

	for it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, c, err := DecodeKey(it.Key())
		if err != nil {
			return err
		}

		c.Value = bytes.Clone(it.Value())

		if err := fn(c); err != nil {
			return err
		}
	}

	return it.Error()
}

// Property returns a goleveldb property such as "leveldb.stats".
func (s *LevelDB) Property(name string) (string, error) {
	return s.db.GetProperty(name)
}

// Close closes the database.
func (s *LevelDB) Close() error {
	return s.db.Close()
}
