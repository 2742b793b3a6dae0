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

	"m4o.io/osmkv/model"
)

type member struct {
	role, typ string
	id        int64
	hasRole   bool
	hasID     bool
	hasType   bool
}

type partial struct {
	kind    model.EntityType
	id      *int64
	info    *model.Info
	tags    map[string]string
	lat     float64
	lon     float64
	hasLat  bool
	hasLon  bool
	refs    []int64
	hasRefs bool
	members []member
	limit   int
}

// Assemble rebuilds the entities stored in the cells of one row.  Because row
// keys do not include the kind, a row may hold up to one entity of each kind;
// they are returned in node, way, relation order.  An Info whose fields were
// all absent comes back as nil.
func Assemble(cells []Cell) ([]model.Entity, error) {
	var parts [3]*partial

	for _, c := range cells {
		kind, tags, err := FamilyKind(c.Family)
		if err != nil {
			return nil, err
		}

		p := parts[kind]
		if p == nil {
			p = &partial{kind: kind, limit: len(cells)}
			parts[kind] = p
		}

		if tags {
			v, err := Decode(KindString, c.Value)
			if err != nil {
				return nil, fmt.Errorf("%s:%s: %w", c.Family, c.Qualifier, err)
			}

			if p.tags == nil {
				p.tags = make(map[string]string)
			}

			p.tags[c.Qualifier] = v.Text

			continue
		}

		if err := p.set(c); err != nil {
			return nil, fmt.Errorf("%s:%s: %w", c.Family, c.Qualifier, err)
		}
	}

	var entities []model.Entity

	for _, p := range parts {
		if p == nil {
			continue
		}

		e, err := p.entity()
		if err != nil {
			return nil, err
		}

		entities = append(entities, e)
	}

	return entities, nil
}

func (p *partial) set(c Cell) error {
	kind, err := KindOf(c.Family, c.Qualifier)
	if err != nil {
		return err
	}

	v, err := Decode(kind, c.Value)
	if err != nil {
		return err
	}

	switch c.Qualifier {
	case QualifierID:
		p.id = &v.Num
	case QualifierVersion:
		p.ensureInfo().Version = model.Some(int32(v.Num))
	case QualifierTimestamp:
		p.ensureInfo().Timestamp = model.Some(v.Time())
	case QualifierChangeset:
		p.ensureInfo().Changeset = model.Some(v.Num)
	case QualifierUserID:
		p.ensureInfo().UID = model.Some(model.UID(v.Num))
	case QualifierUserText:
		p.ensureInfo().User = model.Some(v.Text)
	case QualifierVisible:
		p.ensureInfo().Visible = model.Some(v.Flag)
	case QualifierLatitude:
		p.lat, p.hasLat = v.Float, true
	case QualifierLongitude:
		p.lon, p.hasLon = v.Float, true
	case QualifierRefs:
		p.refs, p.hasRefs = v.Longs, true
	default:
		prefix, i, _ := MemberSlot(c.Qualifier)
		if i >= p.limit {
			return fmt.Errorf("member position %d exceeds the row's %d cells", i, p.limit)
		}

		p.setMember(prefix, i, v)
	}

	return nil
}

func (p *partial) ensureInfo() *model.Info {
	if p.info == nil {
		p.info = &model.Info{}
	}

	return p.info
}

func (p *partial) setMember(prefix string, i int, v Value) {
	for len(p.members) <= i {
		p.members = append(p.members, member{})
	}

	m := &p.members[i]

	switch prefix {
	case prefixRole:
		m.role, m.hasRole = v.Text, true
	case prefixMember:
		m.id, m.hasID = v.Num, true
	case prefixType:
		m.typ, m.hasType = v.Text, true
	}
}

func (p *partial) entity() (model.Entity, error) {
	if p.id == nil {
		return nil, fmt.Errorf("%s row has no %s cell", CoreFamily(p.kind), QualifierID)
	}

	id := model.ID(*p.id)

	switch p.kind {
	case model.NODE:
		if !p.hasLat || !p.hasLon {
			return nil, fmt.Errorf("node %d has no coordinates", id)
		}

		return &model.Node{ID: id, Tags: p.tags, Info: p.info, Lat: model.Degrees(p.lat), Lon: model.Degrees(p.lon)}, nil
	case model.WAY:
		if !p.hasRefs {
			return nil, fmt.Errorf("way %d has no %s cell", id, QualifierRefs)
		}

		refs := make([]model.ID, len(p.refs))
		for i, r := range p.refs {
			refs[i] = model.ID(r)
		}

		return &model.Way{ID: id, Tags: p.tags, Info: p.info, NodeIDs: refs}, nil
	default:
		members := make([]model.Member, len(p.members))

		for i, m := range p.members {
			if !m.hasRole || !m.hasID || !m.hasType {
				return nil, fmt.Errorf("relation %d member %d is incomplete", id, i)
			}

			t, err := model.ParseEntityType(m.typ)
			if err != nil {
				return nil, fmt.Errorf("relation %d member %d: %w", id, i, err)
			}

			members[i] = model.Member{ID: model.ID(m.id), Type: t, Role: m.role}
		}

		return &model.Relation{ID: id, Tags: p.tags, Info: p.info, Members: members}, nil
	}
}
