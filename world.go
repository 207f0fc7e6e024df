package depot

import (
	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

// World owns the entity registry, the component registry with its stores,
// and the registered systems. It is not safe for concurrent use.
type World struct {
	locked     bool
	entities   *entityRegistry
	components *componentRegistry
	systems    []*System
	queue      commandQueue
	log        *zap.Logger
	ticks      uint64
}

func newWorld(s Settings, log *zap.Logger) *World {
	return &World{
		entities:   newEntityRegistry(s.InitialEntities),
		components: newComponentRegistry(s.SignatureWidth, s.StoreCapacity, s.InitialEntities),
		systems:    make([]*System, 0, 16),
		log:        log.Named("depot"),
	}
}

func (w *World) Locked() bool { return w.locked }

// Ticks returns the number of completed Tick calls.
func (w *World) Ticks() uint64 { return w.ticks }

func (w *World) RegisterComponent(schema Schema) (ComponentType, error) {
	if w.locked {
		return ComponentType{}, LockedWorldError{}
	}
	return w.components.register(schema)
}

// Component looks up a registered component type by name.
func (w *World) Component(name string) (ComponentType, bool) {
	return w.components.lookup(name)
}

func (w *World) Store(ct ComponentType) (*ComponentStore, error) {
	return w.components.store(ct)
}

// MustStore is Store for handles known to belong to w.
func (w *World) MustStore(ct ComponentType) *ComponentStore {
	s, err := w.components.store(ct)
	if err != nil {
		panic(err)
	}
	return s
}

// CreateEntity is allowed while locked: a new entity holds no components.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	for _, s := range w.systems {
		if s.cache.required == (mask.Mask{}) {
			s.cache.invalidate()
		}
	}
	return e
}

// DestroyEntity detaches e from every store and frees its id. Destroying
// an entity that is not alive is a no-op.
func (w *World) DestroyEntity(e Entity) error {
	if w.locked {
		return LockedWorldError{}
	}
	if !w.entities.isAlive(e) {
		return nil
	}
	for _, store := range w.components.all() {
		store.remove(e)
	}
	for _, s := range w.systems {
		s.cache.markDirty(e)
	}
	w.entities.destroy(e)
	return nil
}

func (w *World) Alive(e Entity) bool { return w.entities.isAlive(e) }

// Generation changes every time e's id is freed.
func (w *World) Generation(e Entity) uint32 { return w.entities.generation(e) }

// Len returns the number of live entities.
func (w *World) Len() int { return w.entities.live }

func (w *World) Signature(e Entity) mask.Mask { return w.entities.signature(e) }

// AddComponent attaches ct to e with values over the schema defaults.
// Adding a component e already holds is a no-op and ignores values.
func (w *World) AddComponent(e Entity, ct ComponentType, values Values) error {
	if w.locked {
		return LockedWorldError{}
	}
	store, err := w.components.store(ct)
	if err != nil {
		return err
	}
	if !w.entities.isAlive(e) {
		return DeadEntityError{Entity: e}
	}
	added, err := store.add(e, values)
	if err != nil || !added {
		return err
	}
	sig := w.entities.signature(e)
	sig.Mark(ct.bit)
	w.entities.setSignature(e, sig)

	for _, s := range w.systems {
		switch {
		case overlaps(s.cache.required, ct):
			s.cache.invalidate()
		case overlaps(s.cache.excluded, ct):
			s.cache.markDirty(e)
		}
	}
	return nil
}

// RemoveComponent detaches ct from e. Removing an absent component is a
// no-op.
func (w *World) RemoveComponent(e Entity, ct ComponentType) error {
	if w.locked {
		return LockedWorldError{}
	}
	store, err := w.components.store(ct)
	if err != nil {
		return err
	}
	if !store.remove(e) {
		return nil
	}
	sig := w.entities.signature(e)
	sig.Unmark(ct.bit)
	w.entities.setSignature(e, sig)

	for _, s := range w.systems {
		switch {
		case overlaps(s.cache.excluded, ct):
			s.cache.invalidate()
		case overlaps(s.cache.required, ct):
			s.cache.markDirty(e)
		}
	}
	return nil
}

func (w *World) HasComponent(e Entity, ct ComponentType) bool {
	store, err := w.components.store(ct)
	if err != nil {
		return false
	}
	return store.Has(e)
}

// RegisterSystem appends a system; systems run in registration order. Its
// cache starts stale.
func (w *World) RegisterSystem(name string, filter Filter, fn SystemFunc) (*System, error) {
	if w.locked {
		return nil, LockedWorldError{}
	}
	required, excluded, err := filter.compile(w.components)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		fn = func(*World, []Entity, float64) {}
	}
	s := &System{
		name:  name,
		fn:    fn,
		cache: newSystemCache(required, excluded),
	}
	w.systems = append(w.systems, s)
	return s, nil
}

func (w *World) Systems() []*System { return w.systems }

// Reconcile brings a system's cache up to date outside of Tick and returns
// its members. Running systems iterate the cache in place, so Reconcile
// fails while the world is locked.
func (w *World) Reconcile(s *System) ([]Entity, error) {
	if w.locked {
		return nil, LockedWorldError{}
	}
	w.reconcile(s)
	return s.cache.members, nil
}

// Invalidate forces every system cache to rebuild at its next
// reconciliation.
func (w *World) Invalidate() {
	for _, s := range w.systems {
		s.cache.invalidate()
	}
}

// Tick applies queued commands, then reconciles and runs each system in
// registration order. The world is locked while systems run. Errors from
// queued commands are returned after all systems have run.
func (w *World) Tick(dt float64) error {
	if w.locked {
		return LockedWorldError{}
	}
	err := w.processCommandQueue()

	w.locked = true
	defer func() { w.locked = false }()
	for _, s := range w.systems {
		w.reconcile(s)
		s.fn(w, s.cache.members, dt)
	}
	w.ticks++
	return err
}

func (w *World) reconcile(s *System) {
	if !s.cache.reconcile(w.entities) {
		return
	}
	if ce := w.log.Check(zap.DebugLevel, "cache rebuilt"); ce != nil {
		ce.Write(
			zap.String("system", s.name),
			zap.Int("members", len(s.cache.members)),
			zap.Uint64("tick", w.ticks),
		)
	}
}
