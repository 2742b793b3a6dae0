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

// Package store commits cells to sorted key/value storage.
//
// Every cell becomes one record whose key sorts by table, row, family,
// qualifier and visibility, and whose value is the encoded cell value.
package store

import (
	"bytes"
	"context"

	"m4o.io/osmkv/schema"
)

// Writer commits the cells of one block.  A call either commits every cell
// or none of them.
type Writer interface {
	Write(ctx context.Context, table string, cells []schema.Cell) error
}

// ScanFunc receives cells in key order.  Returning an error stops the scan
// and the error is passed back to the caller.
type ScanFunc func(schema.Cell) error

// Scanner iterates the cells of a table.
type Scanner interface {
	Scan(ctx context.Context, table string, fn ScanFunc) error
}

// ScanRows scans a table and calls fn once per run of cells sharing a row
// key.  When s yields keys in order every run is a complete row.
func ScanRows(ctx context.Context, s Scanner, table string, fn func(row []schema.Cell) error) error {
	var cells []schema.Cell

	err := s.Scan(ctx, table, func(c schema.Cell) error {
		if len(cells) > 0 && !bytes.Equal(cells[0].Row, c.Row) {
			if err := fn(cells); err != nil {
				return err
			}

			cells = nil
		}

		cells = append(cells, c)

		return nil
	})
	if err != nil {
		return err
	}

	if len(cells) > 0 {
		return fn(cells)
	}

	return nil
}
