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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmkv/model"
)

func TestDegreesAngle(t *testing.T) {
	assert.InDelta(t, 0.78539816, model.Degrees(45.0).Angle().Radians(), 1e-8)
	assert.InDelta(t, -180.0, model.Degrees(-180.0).Angle().Degrees(), 1e-12)
}

func TestDegreesEqualWithin(t *testing.T) {
	assert.True(t, model.Degrees(53.123450).EqualWithin(model.Degrees(53.123454), model.E5))
	assert.False(t, model.Degrees(53.123450).EqualWithin(model.Degrees(53.123455), model.E5))
}

func TestDegreesString(t *testing.T) {
	assert.Equal(t, "53° 7' 24.42\"", model.Degrees(53.123450).String())
}

func TestToDegreesAndBack(t *testing.T) {
	d := model.ToDegrees(1_000, 100, 515_000_000)
	assert.True(t, model.Degrees(51.500001).EqualWithin(d, model.E9))
	assert.Equal(t, int64(515_000_000), model.ToCoordinate(1_000, 100, d))
	assert.Equal(t, int64(51_500_001_000), d.Coordinate())
}
