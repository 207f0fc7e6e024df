package depot

// SystemFunc is a system's per-tick behavior. entities is the reconciled
// cache, valid only for the duration of the call.
type SystemFunc func(w *World, entities []Entity, dt float64)

// System is a registered behavior plus its cached entity set.
type System struct {
	name  string
	fn    SystemFunc
	cache *systemCache
}

func (s *System) Name() string { return s.name }

// Entities returns the cache as of the last reconciliation.
func (s *System) Entities() []Entity { return s.cache.members }

func (s *System) Len() int { return len(s.cache.members) }

func (s *System) Contains(e Entity) bool { return s.cache.contains(e) }

// Stale reports whether the next reconciliation will be a full rebuild.
func (s *System) Stale() bool { return s.cache.stale }

// Invalidate forces a full rebuild at the next reconciliation.
func (s *System) Invalidate() { s.cache.invalidate() }

func (s *System) Stats() CacheStats { return s.cache.stats }
