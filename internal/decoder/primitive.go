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

package decoder

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// ParsePrimitiveBlock decodes a decompressed primitive block into entities.
// Within each group, nodes are emitted first, then ways, relations and
// finally dense nodes.  Either every entity of the block is returned or an
// error wrapping ErrCorruptBlock.
func ParsePrimitiveBlock(buf []byte) ([]model.Entity, error) {
	blk := &pb.PrimitiveBlock{}
	if err := proto.Unmarshal(buf, blk); err != nil {
		return nil, fmt.Errorf("%w: unable to unmarshal primitive block: %w", ErrCorruptBlock, err)
	}

	c := newBlockContext(blk)

	entities := make([]model.Entity, 0)

	for i, pg := range blk.GetPrimitivegroup() {
		var err error

		if entities, err = c.decodeGroup(entities, pg); err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
	}

	return entities, nil
}

// blockContext holds the string table and the coordinate and time scaling of
// a single block.  It is never shared between blocks.
type blockContext struct {
	strings         []string
	granularity     int32
	latOffset       int64
	lonOffset       int64
	dateGranularity int32
}

func newBlockContext(blk *pb.PrimitiveBlock) *blockContext {
	table := blk.GetStringtable().GetS()

	strs := make([]string, len(table))
	for i, s := range table {
		strs[i] = string(s)
	}

	return &blockContext{
		strings:         strs,
		granularity:     blk.GetGranularity(),
		latOffset:       blk.GetLatOffset(),
		lonOffset:       blk.GetLonOffset(),
		dateGranularity: blk.GetDateGranularity(),
	}
}

func (c *blockContext) decodeGroup(entities []model.Entity, pg *pb.PrimitiveGroup) ([]model.Entity, error) {
	for _, node := range pg.GetNodes() {
		e, err := c.decodeNode(node)
		if err != nil {
			return nil, err
		}

		entities = append(entities, e)
	}

	for _, way := range pg.GetWays() {
		e, err := c.decodeWay(way)
		if err != nil {
			return nil, err
		}

		entities = append(entities, e)
	}

	for _, rel := range pg.GetRelations() {
		e, err := c.decodeRelation(rel)
		if err != nil {
			return nil, err
		}

		entities = append(entities, e)
	}

	if dense := pg.GetDense(); dense != nil {
		return c.decodeDenseNodes(entities, dense)
	}

	return entities, nil
}

// string looks up a string table entry.
func (c *blockContext) string(idx int64) (string, error) {
	if idx < 0 || idx >= int64(len(c.strings)) {
		return "", corruptBlock("string index %d out of range [0,%d)", idx, len(c.strings))
	}

	return c.strings[idx], nil
}

func (c *blockContext) decodeNode(node *pb.Node) (*model.Node, error) {
	tags, err := c.decodeTags(node.GetKeys(), node.GetVals())
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", node.GetId(), err)
	}

	info, err := c.decodeInfo(node.GetInfo())
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", node.GetId(), err)
	}

	return &model.Node{
		ID:   model.ID(node.GetId()),
		Tags: tags,
		Info: info,
		Lat:  model.ToDegrees(c.latOffset, c.granularity, node.GetLat()),
		Lon:  model.ToDegrees(c.lonOffset, c.granularity, node.GetLon()),
	}, nil
}

func (c *blockContext) decodeWay(way *pb.Way) (*model.Way, error) {
	tags, err := c.decodeTags(way.GetKeys(), way.GetVals())
	if err != nil {
		return nil, fmt.Errorf("way %d: %w", way.GetId(), err)
	}

	info, err := c.decodeInfo(way.GetInfo())
	if err != nil {
		return nil, fmt.Errorf("way %d: %w", way.GetId(), err)
	}

	return &model.Way{
		ID:      model.ID(way.GetId()),
		Tags:    tags,
		Info:    info,
		NodeIDs: undelta[int64, model.ID](way.GetRefs()),
	}, nil
}

func (c *blockContext) decodeRelation(rel *pb.Relation) (*model.Relation, error) {
	tags, err := c.decodeTags(rel.GetKeys(), rel.GetVals())
	if err != nil {
		return nil, fmt.Errorf("relation %d: %w", rel.GetId(), err)
	}

	info, err := c.decodeInfo(rel.GetInfo())
	if err != nil {
		return nil, fmt.Errorf("relation %d: %w", rel.GetId(), err)
	}

	members, err := c.decodeMembers(rel)
	if err != nil {
		return nil, fmt.Errorf("relation %d: %w", rel.GetId(), err)
	}

	return &model.Relation{
		ID:      model.ID(rel.GetId()),
		Tags:    tags,
		Info:    info,
		Members: members,
	}, nil
}

func (c *blockContext) decodeMembers(rel *pb.Relation) ([]model.Member, error) {
	memIDs, types, roles := rel.GetMemids(), rel.GetTypes(), rel.GetRolesSid()

	n := len(memIDs)
	if len(types) != n || len(roles) != n {
		return nil, corruptBlock("member arrays differ in length: memids %d, types %d, roles %d",
			n, len(types), len(roles))
	}

	if n == 0 {
		return nil, nil
	}

	ids := undelta[int64, model.ID](memIDs)
	members := make([]model.Member, n)

	for i := range members {
		role, err := c.string(int64(roles[i]))
		if err != nil {
			return nil, fmt.Errorf("member %d role: %w", i, err)
		}

		members[i] = model.Member{
			ID:   ids[i],
			Type: decodeMemberType(types[i]),
			Role: role,
		}
	}

	return members, nil
}

func (c *blockContext) decodeTags(keyIDs, valIDs []uint32) (map[string]string, error) {
	if len(keyIDs) != len(valIDs) {
		return nil, corruptBlock("%d tag keys but %d values", len(keyIDs), len(valIDs))
	}

	if len(keyIDs) == 0 {
		return nil, nil
	}

	tags := make(map[string]string, len(keyIDs))

	for i, keyID := range keyIDs {
		k, err := c.string(int64(keyID))
		if err != nil {
			return nil, err
		}

		v, err := c.string(int64(valIDs[i]))
		if err != nil {
			return nil, err
		}

		tags[k] = v
	}

	return tags, nil
}

func (c *blockContext) decodeInfo(info *pb.Info) (*model.Info, error) {
	if info == nil {
		return nil, nil
	}

	i := &model.Info{}

	if info.Version != nil {
		i.Version = model.Some(*info.Version)
	}

	if info.Timestamp != nil {
		i.Timestamp = model.Some(c.toTimestamp(*info.Timestamp))
	}

	if info.Changeset != nil {
		i.Changeset = model.Some(*info.Changeset)
	}

	if info.Uid != nil {
		i.UID = model.Some(model.UID(*info.Uid))
	}

	if info.UserSid != nil {
		user, err := c.string(int64(*info.UserSid))
		if err != nil {
			return nil, fmt.Errorf("user: %w", err)
		}

		i.User = model.Some(user)
	}

	if info.Visible != nil {
		i.Visible = model.Some(*info.Visible)
	}

	return i, nil
}

func (c *blockContext) decodeDenseNodes(entities []model.Entity, nodes *pb.DenseNodes) ([]model.Entity, error) {
	ids, lats, lons := nodes.GetId(), nodes.GetLat(), nodes.GetLon()
	if len(lats) != len(ids) || len(lons) != len(ids) {
		return nil, corruptBlock("dense arrays differ in length: id %d, lat %d, lon %d",
			len(ids), len(lats), len(lons))
	}

	dic, err := c.newDenseInfoContext(nodes.GetDenseinfo(), len(ids))
	if err != nil {
		return nil, err
	}

	tic := c.newTagsContext(nodes.GetKeysVals())

	var acc denseAccumulators

	for i := range ids {
		id := acc.id.next(ids[i])
		lat := acc.lat.next(lats[i])
		lon := acc.lon.next(lons[i])

		tags, err := tic.decodeTags()
		if err != nil {
			return nil, fmt.Errorf("dense node %d: %w", id, err)
		}

		info, err := dic.decodeInfo(&acc, i)
		if err != nil {
			return nil, fmt.Errorf("dense node %d: %w", id, err)
		}

		entities = append(entities, &model.Node{
			ID:   model.ID(id),
			Tags: tags,
			Info: info,
			Lat:  model.ToDegrees(c.latOffset, c.granularity, lat),
			Lon:  model.ToDegrees(c.lonOffset, c.granularity, lon),
		})
	}

	return entities, nil
}

// denseInfoContext decodes the metadata columns of a dense group.  A column
// that is empty is absent for every node of the group.  When every column is
// empty the nodes carry no Info at all.
type denseInfoContext struct {
	c  *blockContext
	di *pb.DenseInfo
}

func (c *blockContext) newDenseInfoContext(di *pb.DenseInfo, n int) (*denseInfoContext, error) {
	if di == nil {
		return &denseInfoContext{c: c}, nil
	}

	columns := []struct {
		name string
		len  int
	}{
		{"version", len(di.Version)},
		{"timestamp", len(di.Timestamp)},
		{"changeset", len(di.Changeset)},
		{"uid", len(di.Uid)},
		{"user_sid", len(di.UserSid)},
		{"visible", len(di.Visible)},
	}

	present := false

	for _, col := range columns {
		if col.len != 0 && col.len != n {
			return nil, corruptBlock("dense info %s has %d entries for %d nodes", col.name, col.len, n)
		}

		present = present || col.len > 0
	}

	if !present {
		return &denseInfoContext{c: c}, nil
	}

	return &denseInfoContext{c: c, di: di}, nil
}

func (dic *denseInfoContext) decodeInfo(acc *denseAccumulators, i int) (*model.Info, error) {
	di := dic.di
	if di == nil {
		return nil, nil
	}

	info := &model.Info{}

	if len(di.Version) > 0 {
		info.Version = model.Some(di.Version[i])
	}

	if len(di.Timestamp) > 0 {
		info.Timestamp = model.Some(dic.c.toTimestamp(acc.timestamp.next(di.Timestamp[i])))
	}

	if len(di.Changeset) > 0 {
		info.Changeset = model.Some(acc.changeset.next(di.Changeset[i]))
	}

	if len(di.Uid) > 0 {
		info.UID = model.Some(model.UID(acc.uid.next(di.Uid[i])))
	}

	if len(di.UserSid) > 0 {
		user, err := dic.c.string(int64(acc.userSid.next(di.UserSid[i])))
		if err != nil {
			return nil, fmt.Errorf("user: %w", err)
		}

		info.User = model.Some(user)
	}

	if len(di.Visible) > 0 {
		info.Visible = model.Some(di.Visible[i])
	}

	return info, nil
}

// tagsContext walks the keys_vals array of a dense group.  The cursor is
// shared by every node of the group; each node's tags end at a 0 entry.
type tagsContext struct {
	c       *blockContext
	i       int
	keyVals []int32
}

func (c *blockContext) newTagsContext(keyVals []int32) *tagsContext {
	return &tagsContext{c: c, keyVals: keyVals}
}

func (tic *tagsContext) decodeTags() (map[string]string, error) {
	if len(tic.keyVals) == 0 {
		return nil, nil
	}

	var tags map[string]string

	for {
		if tic.i >= len(tic.keyVals) {
			return nil, corruptBlock("dense tags run past the end of keys_vals")
		}

		keyID := tic.keyVals[tic.i]
		tic.i++

		if keyID == 0 {
			return tags, nil
		}

		if tic.i >= len(tic.keyVals) {
			return nil, corruptBlock("dense tag key %d has no value", keyID)
		}

		valID := tic.keyVals[tic.i]
		tic.i++

		k, err := tic.c.string(int64(keyID))
		if err != nil {
			return nil, err
		}

		v, err := tic.c.string(int64(valID))
		if err != nil {
			return nil, err
		}

		if tags == nil {
			tags = make(map[string]string)
		}

		tags[k] = v
	}
}

// decodeMemberType converts a wire member type to an EntityType.  Values
// other than node and way are read as relations.
func decodeMemberType(mt pb.Relation_MemberType) model.EntityType {
	switch mt {
	case pb.Relation_NODE:
		return model.NODE
	case pb.Relation_WAY:
		return model.WAY
	default:
		return model.RELATION
	}
}

// toTimestamp converts a timestamp in units of the block's date granularity
// to a UTC time.
func (c *blockContext) toTimestamp(raw int64) time.Time {
	return time.UnixMilli(raw * int64(c.dateGranularity)).UTC()
}
