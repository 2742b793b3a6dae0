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

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmkv/model"
)

func TestFamilies(t *testing.T) {
	for _, kind := range []model.EntityType{model.NODE, model.WAY, model.RELATION} {
		core, tags := CoreFamily(kind), TagFamily(kind)

		k, isTag, err := FamilyKind(core)
		require.NoError(t, err)
		assert.Equal(t, kind, k)
		assert.False(t, isTag)

		k, isTag, err = FamilyKind(tags)
		require.NoError(t, err)
		assert.Equal(t, kind, k)
		assert.True(t, isTag)
	}

	assert.Len(t, Families(), 6)

	_, _, err := FamilyKind("changeset")
	assert.Error(t, err)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		family, qualifier string
		want              Kind
	}{
		{FamilyNode, QualifierID, KindLong},
		{FamilyWay, QualifierChangeset, KindLong},
		{FamilyRelation, QualifierVersion, KindInt},
		{FamilyNode, QualifierUserID, KindInt},
		{FamilyNode, QualifierTimestamp, KindTime},
		{FamilyWay, QualifierUserText, KindString},
		{FamilyRelation, QualifierVisible, KindBool},
		{FamilyNode, QualifierLatitude, KindDouble},
		{FamilyNode, QualifierLongitude, KindDouble},
		{FamilyWay, QualifierRefs, KindLongArray},
		{FamilyRelation, "role_0", KindString},
		{FamilyRelation, "member_12", KindLong},
		{FamilyRelation, "type_3", KindString},
		{FamilyNodeTag, "highway", KindString},
		{FamilyRelationTag, "id", KindString},
	}

	for _, tt := range tests {
		k, err := KindOf(tt.family, tt.qualifier)
		require.NoError(t, err, "%s:%s", tt.family, tt.qualifier)
		assert.Equal(t, tt.want, k, "%s:%s", tt.family, tt.qualifier)
	}
}

func TestKindOfUnknown(t *testing.T) {
	for _, c := range [][2]string{
		{FamilyWay, QualifierLatitude},
		{FamilyNode, QualifierRefs},
		{FamilyNode, "role_0"},
		{FamilyRelation, "member_"},
		{FamilyRelation, "member_01"},
		{FamilyRelation, "member_-1"},
		{"bogus", QualifierID},
	} {
		_, err := KindOf(c[0], c[1])
		assert.Error(t, err, "%s:%s", c[0], c[1])
	}
}

func TestMemberSlot(t *testing.T) {
	prefix, i, ok := MemberSlot(MemberQualifier(17))
	assert.True(t, ok)
	assert.Equal(t, "member_", prefix)
	assert.Equal(t, 17, i)

	assert.Equal(t, "role_0", RoleQualifier(0))
	assert.Equal(t, "type_2", TypeQualifier(2))
}
