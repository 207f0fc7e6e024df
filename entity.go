package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque identifier. Ids are recycled after destruction.
type Entity uint32

// Null is never handed out by a world.
const Null Entity = 0

type entityRegistry struct {
	signatures  []mask.Mask
	generations []uint32
	alive       []bool
	free        []Entity
	next        Entity
	live        int
}

func newEntityRegistry(capacity int) *entityRegistry {
	if capacity < 2 {
		capacity = 2
	}
	return &entityRegistry{
		signatures:  make([]mask.Mask, capacity),
		generations: make([]uint32, capacity),
		alive:       make([]bool, capacity),
		free:        make([]Entity, 0, 64),
		next:        1,
	}
}

// create pops the most recently freed id, or takes the next unused one.
func (r *entityRegistry) create() Entity {
	var e Entity
	if n := len(r.free); n > 0 {
		e = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		e = r.next
		r.next++
		if int(e) >= len(r.signatures) {
			r.grow(max(int(e)+1, 2*len(r.signatures)))
		}
	}
	r.signatures[e] = mask.Mask{}
	r.alive[e] = true
	r.live++
	return e
}

// destroy reports false if e was not alive.
func (r *entityRegistry) destroy(e Entity) bool {
	if !r.isAlive(e) {
		return false
	}
	r.signatures[e] = mask.Mask{}
	r.alive[e] = false
	r.generations[e]++
	r.free = append(r.free, e)
	r.live--
	return true
}

func (r *entityRegistry) isAlive(e Entity) bool {
	return e != Null && int(e) < len(r.alive) && r.alive[e]
}

func (r *entityRegistry) signature(e Entity) mask.Mask {
	if int(e) >= len(r.signatures) {
		return mask.Mask{}
	}
	return r.signatures[e]
}

func (r *entityRegistry) setSignature(e Entity, sig mask.Mask) {
	r.signatures[e] = sig
}

func (r *entityRegistry) generation(e Entity) uint32 {
	if int(e) >= len(r.generations) {
		return 0
	}
	return r.generations[e]
}

func (r *entityRegistry) each() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := Entity(1); e < r.next; e++ {
			if !r.alive[e] {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (r *entityRegistry) grow(n int) {
	sigs := make([]mask.Mask, n)
	copy(sigs, r.signatures)
	r.signatures = sigs

	gens := make([]uint32, n)
	copy(gens, r.generations)
	r.generations = gens

	alive := make([]bool, n)
	copy(alive, r.alive)
	r.alive = alive
}
