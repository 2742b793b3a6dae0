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

// Package model contains the canonical entity model shared by the PBF and
// columnar decoders and consumed by the schema mapper.
package model

import (
	"fmt"
	"time"
)

// UID is the primary key for a user.
type UID int32

// Info represents the optional metadata common to Node, Way, and Relation
// entities.  Each field is present only if the source carried it.
type Info struct {
	Version   Optional[int32]
	Timestamp Optional[time.Time]
	Changeset Optional[int64]
	UID       Optional[UID]
	User      Optional[string]
	Visible   Optional[bool]
}

// Entity is the kind-agnostic record produced by the decoders.
type Entity interface {
	isEntity() // prevents extensions

	Kind() EntityType

	GetID() ID

	GetTags() map[string]string

	// GetInfo returns nil when the entity carried no metadata at all.
	GetInfo() *Info
}

// ID is the primary key of an entity.  IDs are unique within a kind only.
type ID int64

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude. Each node comprises at least an id number and a
// pair of coordinates.
type Node struct {
	ID   ID
	Tags map[string]string
	Info *Info
	Lat  Degrees
	Lon  Degrees
}

var _ Entity = (*Node)(nil)

func (n *Node) isEntity() {}

func (n *Node) Kind() EntityType { return NODE }

func (n *Node) GetID() ID {
	return n.ID
}

func (n *Node) GetTags() map[string]string {
	return n.Tags
}

func (n *Node) GetInfo() *Info {
	return n.Info
}

// Way is an ordered list of nodes that define a polyline.  The order of
// NodeIDs is significant.
type Way struct {
	ID      ID
	Tags    map[string]string
	Info    *Info
	NodeIDs []ID
}

var _ Entity = (*Way)(nil)

func (w *Way) isEntity() {}

func (w *Way) Kind() EntityType { return WAY }

func (w *Way) GetID() ID {
	return w.ID
}

func (w *Way) GetTags() map[string]string {
	return w.Tags
}

func (w *Way) GetInfo() *Info {
	return w.Info
}

// EntityType is an enumeration of entity kinds.
type EntityType int32

const (
	// NODE denotes that the member is a node.
	NODE EntityType = iota

	// WAY denotes that the member is a way.
	WAY

	// RELATION denotes that the member is a relation.
	RELATION
)

func (t EntityType) String() string {
	switch t {
	case NODE:
		return "NODE"
	case WAY:
		return "WAY"
	case RELATION:
		return "RELATION"
	default:
		return fmt.Sprintf("EntityType(%d)", int32(t))
	}
}

// ParseEntityType converts the String form of an EntityType back.
func ParseEntityType(s string) (EntityType, error) {
	switch s {
	case "NODE":
		return NODE, nil
	case "WAY":
		return WAY, nil
	case "RELATION":
		return RELATION, nil
	default:
		return 0, fmt.Errorf("unknown entity type %q", s)
	}
}

// Member represents an entity that takes part in a relation.
type Member struct {
	ID   ID
	Type EntityType
	Role string
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more data entities (nodes, ways, and/or other relations).
// The order of Members is significant.
type Relation struct {
	ID      ID
	Tags    map[string]string
	Info    *Info
	Members []Member
}

var _ Entity = (*Relation)(nil)

func (r *Relation) isEntity() {}

func (r *Relation) Kind() EntityType { return RELATION }

func (r *Relation) GetID() ID {
	return r.ID
}

func (r *Relation) GetTags() map[string]string {
	return r.Tags
}

func (r *Relation) GetInfo() *Info {
	return r.Info
}
