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
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Input is an opened source file.
type Input struct {
	io.Reader

	// Name is the path, or "-" for stdin.
	Name string

	// Size is the length in bytes, or -1 when unknown.
	Size int64

	closers []func() error
}

// OpenInput opens path for reading; "" and "-" mean stdin.  With useMmap the
// file is mapped into memory instead of read through the page cache with
// read calls.
func OpenInput(path string, useMmap bool) (*Input, error) {
	if path == "" || path == "-" {
		return &Input{Reader: os.Stdin, Name: "-", Size: -1}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	in := &Input{Reader: f, Name: path, Size: fi.Size(), closers: []func() error{f.Close}}

	if useMmap && fi.Size() > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			_ = f.Close()

			return nil, err
		}

		in.Reader = bytes.NewReader(m)
		in.closers = []func() error{m.Unmap, f.Close}
	}

	return in, nil
}

// Close releases the mapping and file, if any.
func (in *Input) Close() error {
	var errs []error

	for _, c := range in.closers {
		errs = append(errs, c())
	}

	in.closers = nil

	return errors.Join(errs...)
}
