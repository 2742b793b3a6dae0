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
	"github.com/spf13/pflag"

	"m4o.io/osmkv"
)

// -- osmkv.Compression Value
type compressionValue struct {
	value *osmkv.Compression
}

// NewCompressionValue creates a pflag Value for a block compression.
func NewCompressionValue(def osmkv.Compression, p *osmkv.Compression) pflag.Value {
	*p = def

	return &compressionValue{value: p}
}

func (c *compressionValue) Set(val string) error {
	v, err := osmkv.ParseCompression(val)
	if err != nil {
		return err
	}

	*c.value = v

	return nil
}

func (c *compressionValue) Type() string {
	return "compression"
}

func (c *compressionValue) String() string {
	return c.value.String()
}
