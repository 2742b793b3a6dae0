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
	"golang.org/x/exp/constraints"
)

// accumulator is a running total over a delta coded sequence.  The zero
// value starts at zero.
type accumulator[T constraints.Integer] struct {
	sum T
}

func (a *accumulator[T]) next(delta T) T {
	a.sum += delta

	return a.sum
}

// undelta returns the absolute values of a delta coded sequence.  The
// running total starts at zero for every call.
func undelta[T constraints.Integer, R constraints.Integer](deltas []T) []R {
	if len(deltas) == 0 {
		return nil
	}

	values := make([]R, len(deltas))

	var acc accumulator[T]
	for i, d := range deltas {
		values[i] = R(acc.next(d))
	}

	return values
}

// denseAccumulators holds the running totals of a single dense group.  A new
// value is created for every group so that no state crosses a group or block
// boundary.
type denseAccumulators struct {
	id        accumulator[int64]
	lat       accumulator[int64]
	lon       accumulator[int64]
	timestamp accumulator[int64]
	changeset accumulator[int64]
	uid       accumulator[int32]
	userSid   accumulator[int32]
}
