package depot

import "iter"

// Reader is the read side collaborators such as renderers consume each
// frame.
type Reader interface {
	Alive(Entity) bool
	HasComponent(Entity, ComponentType) bool
	Store(ComponentType) (*ComponentStore, error)
	Each(Filter) (iter.Seq[Entity], error)
}

// Commander is the write side for code that runs between or during ticks,
// such as input handlers. Commands apply at the start of the next Tick.
type Commander interface {
	EnqueueCreateEntity(...Init)
	EnqueueDestroyEntity(Entity)
	EnqueueAddComponent(Entity, ComponentType, Values)
	EnqueueRemoveComponent(Entity, ComponentType)
	EnqueueSetField(Entity, ComponentType, string, float64)
}

var (
	_ Reader    = &World{}
	_ Commander = &World{}
)
