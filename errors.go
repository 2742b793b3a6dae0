// Copyright 2017-25 the original author or authors.
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

package osmkv

import (
	"m4o.io/osmkv/internal/decoder"
)

// Block failures.  Errors returned by this package wrap one of these and can
// be tested with errors.Is.
var (
	// ErrCorruptContainer reports a blob that cannot be framed, parsed or
	// decompressed.
	ErrCorruptContainer = decoder.ErrCorruptContainer

	// ErrCorruptBlock reports a malformed primitive block, including string
	// table references out of range.
	ErrCorruptBlock = decoder.ErrCorruptBlock

	// ErrUnsupportedEncoding reports a compression, blob type or required
	// feature the decoder does not handle.
	ErrUnsupportedEncoding = decoder.ErrUnsupportedEncoding

	// ErrStreamRead reports a stream that cannot be read any further, such
	// as a truncated file.  It always wraps ErrCorruptContainer as well.
	ErrStreamRead = decoder.ErrStreamRead
)
