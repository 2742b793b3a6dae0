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

// Package osmkv decodes OpenStreetMap PBF data and maps the decoded entities
// onto cells of a wide-column key/value table.
//
// A Session decodes single blocks handed to it by an outside dispatcher.  A
// Decoder reads a whole PBF stream and decodes its blocks concurrently,
// delivering them in file order.  Either way a block is decoded completely or
// not at all: a failing block yields an error and no cells.
package osmkv
