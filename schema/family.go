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
	"fmt"
	"strconv"
	"strings"

	"m4o.io/osmkv/model"
)

// Column families.  Every kind has a core family and a tag family.
const (
	FamilyNode        = "node"
	FamilyNodeTag     = "node_tag"
	FamilyWay         = "way"
	FamilyWayTag      = "way_tag"
	FamilyRelation    = "relation"
	FamilyRelationTag = "relation_tag"
)

// Core qualifiers.
const (
	QualifierID        = "id"
	QualifierVersion   = "version"
	QualifierTimestamp = "timestamp"
	QualifierChangeset = "changeset"
	QualifierUserID    = "user_id"
	QualifierUserText  = "user_text"
	QualifierVisible   = "visible"
	QualifierLatitude  = "lat"
	QualifierLongitude = "lon"
	QualifierRefs      = "refs"

	prefixRole   = "role_"
	prefixMember = "member_"
	prefixType   = "type_"
)

// Families returns every column family in a stable order.
func Families() []string {
	return []string{FamilyNode, FamilyNodeTag, FamilyWay, FamilyWayTag, FamilyRelation, FamilyRelationTag}
}

// CoreFamily returns the family holding an entity kind's fields.
func CoreFamily(t model.EntityType) string {
	switch t {
	case model.NODE:
		return FamilyNode
	case model.WAY:
		return FamilyWay
	default:
		return FamilyRelation
	}
}

// TagFamily returns the family holding an entity kind's tags.
func TagFamily(t model.EntityType) string {
	return CoreFamily(t) + "_tag"
}

// FamilyKind returns the entity kind of a family and whether the family holds
// tags.
func FamilyKind(family string) (model.EntityType, bool, error) {
	switch family {
	case FamilyNode:
		return model.NODE, false, nil
	case FamilyNodeTag:
		return model.NODE, true, nil
	case FamilyWay:
		return model.WAY, false, nil
	case FamilyWayTag:
		return model.WAY, true, nil
	case FamilyRelation:
		return model.RELATION, false, nil
	case FamilyRelationTag:
		return model.RELATION, true, nil
	default:
		return 0, false, fmt.Errorf("unknown column family %q", family)
	}
}

// RoleQualifier names the role of the i-th relation member.
func RoleQualifier(i int) string { return prefixRole + strconv.Itoa(i) }

// MemberQualifier names the id of the i-th relation member.
func MemberQualifier(i int) string { return prefixMember + strconv.Itoa(i) }

// TypeQualifier names the type of the i-th relation member.
func TypeQualifier(i int) string { return prefixType + strconv.Itoa(i) }

// MemberSlot parses a positional member qualifier, returning its prefix
// ("role_", "member_" or "type_") and position.
func MemberSlot(qualifier string) (string, int, bool) {
	for _, prefix := range []string{prefixRole, prefixMember, prefixType} {
		rest, ok := strings.CutPrefix(qualifier, prefix)
		if !ok {
			continue
		}

		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 || strconv.Itoa(i) != rest {
			return "", 0, false
		}

		return prefix, i, true
	}

	return "", 0, false
}

// KindOf returns the value kind stored under a family and qualifier.
func KindOf(family, qualifier string) (Kind, error) {
	kind, tags, err := FamilyKind(family)
	if err != nil {
		return 0, err
	}

	if tags {
		return KindString, nil
	}

	switch qualifier {
	case QualifierID, QualifierChangeset:
		return KindLong, nil
	case QualifierVersion, QualifierUserID:
		return KindInt, nil
	case QualifierTimestamp:
		return KindTime, nil
	case QualifierUserText:
		return KindString, nil
	case QualifierVisible:
		return KindBool, nil
	}

	switch kind {
	case model.NODE:
		if qualifier == QualifierLatitude || qualifier == QualifierLongitude {
			return KindDouble, nil
		}
	case model.WAY:
		if qualifier == QualifierRefs {
			return KindLongArray, nil
		}
	case model.RELATION:
		if prefix, _, ok := MemberSlot(qualifier); ok {
			if prefix == prefixMember {
				return KindLong, nil
			}

			return KindString, nil
		}
	}

	return 0, fmt.Errorf("unknown qualifier %q in family %q", qualifier, family)
}
