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

package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptContainer is returned when a blob cannot be parsed or
	// decompressed, or its decompressed size differs from the declared one.
	ErrCorruptContainer = errors.New("corrupt block container")

	// ErrCorruptBlock is returned when a decompressed primitive block is
	// malformed.
	ErrCorruptBlock = errors.New("corrupt primitive block")

	// ErrUnsupportedEncoding is returned for blobs without a payload, payload
	// compressions that cannot be read, unknown blob types and files that
	// require features the decoder lacks.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrStreamRead is returned when the stream cannot be framed any further,
	// such as on a truncated file.  Nothing after it can be decoded.
	ErrStreamRead = errors.New("unreadable stream")
)

func corruptBlock(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptBlock, fmt.Sprintf(format, args...))
}

// streamError reports a framing failure.  It wraps both ErrStreamRead and
// ErrCorruptContainer.
func streamError(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %w", ErrStreamRead, ErrCorruptContainer, fmt.Errorf(format, args...))
}
