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

// Package schema maps entities onto a sparse wide-column layout.
//
// Each entity becomes one row keyed by a hash of its id.  The row holds a
// core column family for the kind (node, way or relation) and a tag family
// (node_tag, way_tag or relation_tag) whose qualifiers are the tag keys.
// Relation members are spread over positional qualifiers role_<i>,
// member_<i> and type_<i>.  Every cell carries the same visibility label.
package schema
