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

package cli

import (
	"fmt"

	"m4o.io/osmkv/internal/config"
	"m4o.io/osmkv/store"
)

// Store is a store that can be both written and scanned.
type Store interface {
	store.Writer
	store.Scanner
	Close() error
}

type sstableStore struct {
	*store.SSTableDir
}

func (sstableStore) Close() error { return nil }

// OpenStore opens the store a configuration names.
func OpenStore(c config.StoreConfig) (Store, error) {
	switch c.Kind {
	case config.StoreLevelDB:
		db, err := store.OpenLevelDB(c.Path, store.LevelDBOptions{
			Sync:          c.Sync,
			Compress:      c.Compress,
			WriteBufferMB: c.WriteBufferMB,
		})
		if err != nil {
			return nil, err
		}

		return db, nil
	case config.StoreSSTable:
		d, err := store.NewSSTableDir(c.Path)
		if err != nil {
			return nil, err
		}

		return sstableStore{d}, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", c.Kind)
	}
}
