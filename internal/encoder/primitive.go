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

package encoder

import (
	"sort"
	"time"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

const (
	DateGranularityMs = 1000
	Granularity       = 100
	LatOffset         = 0
	LonOffset         = 0

	// EntityLimit is the max number of entities in a pb.PrimitiveBlock.
	// Certain programs (e.g. osmosis 0.38) limit the number of entities in
	// each block to 8000 when writing PBF format.
	EntityLimit = 8000
)

// BlockOptions controls the scaling and layout of encoded blocks.
type BlockOptions struct {
	Granularity     int32
	DateGranularity int32
	LatOffset       int64
	LonOffset       int64

	// DenseNodes writes nodes as DenseNodes rather than one Node message
	// each.
	DenseNodes bool
}

// DefaultBlockOptions returns the layout most writers use.
func DefaultBlockOptions() BlockOptions {
	return BlockOptions{
		Granularity:     Granularity,
		DateGranularity: DateGranularityMs,
		LatOffset:       LatOffset,
		LonOffset:       LonOffset,
		DenseNodes:      true,
	}
}

// EncodeBlock converts entities into a primitive block.  Each run of
// consecutive entities of the same kind becomes one primitive group.
func EncodeBlock(entities []model.Entity, opts BlockOptions) *pb.PrimitiveBlock {
	bc := newBlockContext(entities, opts)

	b := &pb.PrimitiveBlock{
		Stringtable:     &pb.StringTable{S: bc.table.AsArray()},
		Granularity:     proto.Int32(opts.Granularity),
		LatOffset:       proto.Int64(opts.LatOffset),
		LonOffset:       proto.Int64(opts.LonOffset),
		DateGranularity: proto.Int32(opts.DateGranularity),
	}

	for start := 0; start < len(entities); {
		end := start + 1
		for end < len(entities) && entities[end].Kind() == entities[start].Kind() {
			end++
		}

		b.Primitivegroup = append(b.Primitivegroup, bc.extractGroup(entities[start:end]))
		start = end
	}

	return b
}

type blockContext struct {
	table *Table
	opts  BlockOptions
}

func newBlockContext(entities []model.Entity, opts BlockOptions) *blockContext {
	strings := NewStrings()

	for _, e := range entities {
		extractTagsAndInfo(strings, e)

		if r, ok := e.(*model.Relation); ok {
			extractMemberRoles(strings, r)
		}
	}

	return &blockContext{
		table: strings.CalcTable(),
		opts:  opts,
	}
}

func (bc *blockContext) extractGroup(entities []model.Entity) *pb.PrimitiveGroup {
	pg := &pb.PrimitiveGroup{}

	switch entities[0].Kind() {
	case model.NODE:
		if bc.opts.DenseNodes {
			pg.Dense = bc.extractDenseNodes(entities)
		} else {
			pg.Nodes = bc.extractNodes(entities)
		}
	case model.WAY:
		pg.Ways = bc.extractWays(entities)
	case model.RELATION:
		pg.Relations = bc.extractRelations(entities)
	}

	return pg
}

func (bc *blockContext) extractNodes(entities []model.Entity) []*pb.Node {
	nodes := make([]*pb.Node, 0, len(entities))

	for _, e := range entities {
		n := e.(*model.Node)
		keyIDs, valIDs := calcTagIDs(n.Tags, bc.table)

		nodes = append(nodes, &pb.Node{
			Id:   proto.Int64(int64(n.ID)),
			Keys: keyIDs,
			Vals: valIDs,
			Info: bc.toInfoPb(n.Info),
			Lat:  proto.Int64(model.ToCoordinate(bc.opts.LatOffset, bc.opts.Granularity, n.Lat)),
			Lon:  proto.Int64(model.ToCoordinate(bc.opts.LonOffset, bc.opts.Granularity, n.Lon)),
		})
	}

	return nodes
}

// extractDenseNodes writes a column of dense info only when at least one node
// carries that field; nodes lacking it get the zero value.  DenseInfo is left
// out when no column is written.
func (bc *blockContext) extractDenseNodes(entities []model.Entity) *pb.DenseNodes {
	n := len(entities)

	ids := make([]int64, 0, n)
	lats := make([]int64, 0, n)
	lons := make([]int64, 0, n)

	versions := make([]int32, 0, n)
	ts := make([]int64, 0, n)
	cs := make([]int64, 0, n)
	uids := make([]int32, 0, n)
	usids := make([]int32, 0, n)
	visible := make([]bool, 0, n)

	var hasVersion, hasTs, hasCs, hasUID, hasUser, hasVisible bool

	keyValIDs := make([]int32, 0)
	hasTags := false

	for _, e := range entities {
		node := e.(*model.Node)

		ids = append(ids, int64(node.ID))
		lats = append(lats, model.ToCoordinate(bc.opts.LatOffset, bc.opts.Granularity, node.Lat))
		lons = append(lons, model.ToCoordinate(bc.opts.LonOffset, bc.opts.Granularity, node.Lon))

		info := node.Info
		if info == nil {
			info = &model.Info{}
		}

		hasVersion = hasVersion || info.Version.IsSet()
		hasTs = hasTs || info.Timestamp.IsSet()
		hasCs = hasCs || info.Changeset.IsSet()
		hasUID = hasUID || info.UID.IsSet()
		hasUser = hasUser || info.User.IsSet()
		hasVisible = hasVisible || info.Visible.IsSet()

		versions = append(versions, info.Version.OrElse(0))
		ts = append(ts, bc.fromTimestamp(info.Timestamp.OrElse(time.UnixMilli(0))))
		cs = append(cs, info.Changeset.OrElse(0))
		uids = append(uids, int32(info.UID.OrElse(0)))
		usids = append(usids, bc.table.IndexOf(info.User.OrElse(notUsed)))
		visible = append(visible, info.Visible.OrElse(true))

		kIDs, vIDs := calcTagIDs(node.Tags, bc.table)
		for i, k := range kIDs {
			keyValIDs = append(keyValIDs, int32(k), int32(vIDs[i]))
		}

		hasTags = hasTags || len(kIDs) > 0
		keyValIDs = append(keyValIDs, 0)
	}

	dn := &pb.DenseNodes{
		Id:  calcDeltas(ids),
		Lat: calcDeltas(lats),
		Lon: calcDeltas(lons),
	}

	if hasTags {
		dn.KeysVals = keyValIDs
	}

	if hasVersion || hasTs || hasCs || hasUID || hasUser || hasVisible {
		di := &pb.DenseInfo{}

		if hasVersion {
			di.Version = versions
		}

		if hasTs {
			di.Timestamp = calcDeltas(ts)
		}

		if hasCs {
			di.Changeset = calcDeltas(cs)
		}

		if hasUID {
			di.Uid = calcDeltas(uids)
		}

		if hasUser {
			di.UserSid = calcDeltas(usids)
		}

		if hasVisible {
			di.Visible = visible
		}

		dn.Denseinfo = di
	}

	return dn
}

func (bc *blockContext) extractWays(entities []model.Entity) []*pb.Way {
	ways := make([]*pb.Way, 0, len(entities))

	for _, e := range entities {
		w := e.(*model.Way)

		refs := make([]int64, len(w.NodeIDs))
		for i, r := range w.NodeIDs {
			refs[i] = int64(r)
		}

		keyIDs, valIDs := calcTagIDs(w.Tags, bc.table)

		ways = append(ways, &pb.Way{
			Id:   proto.Int64(int64(w.ID)),
			Keys: keyIDs,
			Vals: valIDs,
			Info: bc.toInfoPb(w.Info),
			Refs: calcDeltas(refs),
		})
	}

	return ways
}

func (bc *blockContext) extractRelations(entities []model.Entity) []*pb.Relation {
	relations := make([]*pb.Relation, 0, len(entities))

	for _, e := range entities {
		r := e.(*model.Relation)
		keyIDs, valIDs := calcTagIDs(r.Tags, bc.table)

		memids := make([]int64, len(r.Members))
		roleids := make([]int32, len(r.Members))
		types := make([]pb.Relation_MemberType, len(r.Members))

		for i, m := range r.Members {
			memids[i] = int64(m.ID)
			roleids[i] = bc.table.IndexOf(m.Role)
			types[i] = pb.Relation_MemberType(m.Type)
		}

		relations = append(relations, &pb.Relation{
			Id:       proto.Int64(int64(r.ID)),
			Keys:     keyIDs,
			Vals:     valIDs,
			Info:     bc.toInfoPb(r.Info),
			RolesSid: roleids,
			Memids:   calcDeltas(memids),
			Types:    types,
		})
	}

	return relations
}

func extractMemberRoles(strings *Strings, r *model.Relation) {
	for _, m := range r.Members {
		strings.Add(m.Role)
	}
}

func extractTagsAndInfo(strings *Strings, e model.Entity) {
	for k, v := range e.GetTags() {
		strings.Add(k)
		strings.Add(v)
	}

	if info := e.GetInfo(); info != nil {
		if user, ok := info.User.Get(); ok {
			strings.Add(user)
		}
	}
}

// calcDeltas calculates the delta-encoding of the values.
func calcDeltas[T interface {
	constraints.Integer | constraints.Float
}](values []T) []T {
	if len(values) == 0 {
		return nil
	}

	prev := T(0)
	deltas := make([]T, len(values))

	for i, id := range values {
		deltas[i] = id - prev
		prev = id
	}

	return deltas
}

func calcTagIDs(tags map[string]string, table *Table) (keyIDs []uint32, valIDs []uint32) {
	keys := make([]string, 0, len(tags))

	for k := range tags {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		keyIDs = append(keyIDs, uint32(table.IndexOf(k)))
		valIDs = append(valIDs, uint32(table.IndexOf(tags[k])))
	}

	return keyIDs, valIDs
}

// toInfoPb writes only the fields that are present.
func (bc *blockContext) toInfoPb(info *model.Info) *pb.Info {
	if info == nil {
		return nil
	}

	pbInfo := &pb.Info{}

	if v, ok := info.Version.Get(); ok {
		pbInfo.Version = proto.Int32(v)
	}

	if ts, ok := info.Timestamp.Get(); ok {
		pbInfo.Timestamp = proto.Int64(bc.fromTimestamp(ts))
	}

	if cs, ok := info.Changeset.Get(); ok {
		pbInfo.Changeset = proto.Int64(cs)
	}

	if uid, ok := info.UID.Get(); ok {
		pbInfo.Uid = proto.Int32(int32(uid))
	}

	if user, ok := info.User.Get(); ok {
		pbInfo.UserSid = proto.Uint32(uint32(bc.table.IndexOf(user)))
	}

	if visible, ok := info.Visible.Get(); ok {
		pbInfo.Visible = proto.Bool(visible)
	}

	return pbInfo
}

// fromTimestamp converts a time to units of the block's date granularity.
func (bc *blockContext) fromTimestamp(ts time.Time) int64 {
	return fromTimestamp(bc.opts.DateGranularity, ts)
}

func fromTimestamp(granularity int32, timestamp time.Time) int64 {
	return timestamp.UnixMilli() / int64(granularity)
}
