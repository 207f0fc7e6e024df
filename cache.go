package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// CacheStats counts how a system's cache has been maintained.
type CacheStats struct {
	Rebuilds  uint64
	Patches   uint64
	Evictions uint64
}

type signatureSource interface {
	isAlive(Entity) bool
	signature(Entity) mask.Mask
	each() iter.Seq[Entity]
}

var _ signatureSource = &entityRegistry{}

// systemCache holds the entities matching one required/excluded mask pair.
//
// A stale cache is rebuilt by scanning every live entity. A fresh cache is
// only patched: members marked dirty are re-tested and evicted when they no
// longer match. Patching never adds members, so callers must mark the cache
// stale whenever an entity may have started matching.
type systemCache struct {
	required mask.Mask
	excluded mask.Mask
	members  []Entity
	index    map[Entity]int
	dirty    []Entity
	dirtySet map[Entity]struct{}
	stale    bool
	stats    CacheStats
}

func newSystemCache(required, excluded mask.Mask) *systemCache {
	return &systemCache{
		required: required,
		excluded: excluded,
		index:    make(map[Entity]int),
		dirtySet: make(map[Entity]struct{}),
		stale:    true,
	}
}

func (c *systemCache) invalidate() {
	c.stale = true
}

// markDirty queues a member for re-testing. Non-members are ignored since
// a patch could not admit them anyway.
func (c *systemCache) markDirty(e Entity) {
	if c.stale {
		return
	}
	if _, ok := c.index[e]; !ok {
		return
	}
	if _, ok := c.dirtySet[e]; ok {
		return
	}
	c.dirtySet[e] = struct{}{}
	c.dirty = append(c.dirty, e)
}

func (c *systemCache) contains(e Entity) bool {
	_, ok := c.index[e]
	return ok
}

// reconcile brings the cache up to date and reports whether it was rebuilt.
func (c *systemCache) reconcile(src signatureSource) bool {
	if c.stale {
		c.rebuild(src)
		return true
	}
	c.patch(src)
	return false
}

func (c *systemCache) rebuild(src signatureSource) {
	c.members = c.members[:0]
	clear(c.index)
	for e := range src.each() {
		if matches(src.signature(e), c.required, c.excluded) {
			c.index[e] = len(c.members)
			c.members = append(c.members, e)
		}
	}
	c.clearDirty()
	c.stale = false
	c.stats.Rebuilds++
}

func (c *systemCache) patch(src signatureSource) {
	if len(c.dirty) == 0 {
		return
	}
	for _, e := range c.dirty {
		if !c.contains(e) {
			continue
		}
		if src.isAlive(e) && matches(src.signature(e), c.required, c.excluded) {
			continue
		}
		c.evict(e)
	}
	c.clearDirty()
	c.stats.Patches++
}

func (c *systemCache) evict(e Entity) {
	idx := c.index[e]
	last := len(c.members) - 1
	if idx != last {
		moved := c.members[last]
		c.members[idx] = moved
		c.index[moved] = idx
	}
	c.members = c.members[:last]
	delete(c.index, e)
	c.stats.Evictions++
}

func (c *systemCache) clearDirty() {
	c.dirty = c.dirty[:0]
	clear(c.dirtySet)
}
