package depot

const absent int32 = -1

// ComponentStore is the sparse-set pool for one component type. Every field
// column, and dense, share the same dense index for a given entity.
// Membership changes only through World; callers get reads and field writes.
type ComponentStore struct {
	ct      ComponentType
	schema  Schema
	dense   []Entity
	sparse  []int32
	columns []column
	byName  map[string]int
	size    int
}

func newComponentStore(ct ComponentType, schema Schema, capacity, entities int) *ComponentStore {
	if capacity < 1 {
		capacity = 1
	}
	s := &ComponentStore{
		ct:      ct,
		schema:  schema,
		dense:   make([]Entity, capacity),
		columns: make([]column, len(schema.Fields)),
		byName:  make(map[string]int, len(schema.Fields)),
	}
	s.growSparse(entities)
	for i, f := range schema.Fields {
		s.columns[i] = newColumn(f, capacity)
		s.byName[f.Name] = i
	}
	return s
}

func (s *ComponentStore) Type() ComponentType { return s.ct }

func (s *ComponentStore) Schema() Schema { return s.schema }

func (s *ComponentStore) Len() int { return s.size }

func (s *ComponentStore) Cap() int { return len(s.dense) }

// Entities returns the dense entity list. Position i holds the entity whose
// field values live at index i of every column.
func (s *ComponentStore) Entities() []Entity {
	return s.dense[:s.size]
}

func (s *ComponentStore) Has(e Entity) bool {
	if int(e) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[e]
	return idx != absent && int(idx) < s.size && s.dense[idx] == e
}

// checkValues reports the first override naming a field the schema lacks.
func (s *ComponentStore) checkValues(overrides Values) error {
	for name := range overrides {
		if _, ok := s.byName[name]; !ok {
			return UnknownFieldError{Component: s.ct.name, Field: name}
		}
	}
	return nil
}

// add appends e with schema defaults, then applies overrides. Adding an
// entity that is already present is a no-op and reports false. Only World
// calls add, so store membership and signatures stay in step.
func (s *ComponentStore) add(e Entity, overrides Values) (bool, error) {
	if err := s.checkValues(overrides); err != nil {
		return false, err
	}
	if s.Has(e) {
		return false, nil
	}
	if int(e) >= len(s.sparse) {
		s.growSparse(max(int(e)+1, 2*len(s.sparse)))
	}
	if s.size == len(s.dense) {
		s.grow(2 * len(s.dense))
	}
	idx := s.size
	s.size++
	s.dense[idx] = e
	s.sparse[e] = int32(idx)
	for _, col := range s.columns {
		col.reset(idx)
	}
	for name, v := range overrides {
		s.columns[s.byName[name]].SetFloat64(idx, v)
	}
	return true, nil
}

// remove swap-removes e: the last dense entry moves into e's slot.
// Removing an absent entity reports false.
func (s *ComponentStore) remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx := int(s.sparse[e])
	last := s.size - 1
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.sparse[moved] = int32(idx)
		for _, col := range s.columns {
			col.move(idx, last)
		}
	}
	s.sparse[e] = absent
	s.dense[last] = Null
	s.size--
	return true
}

// DenseIndex returns the index of e in every column, if present.
func (s *ComponentStore) DenseIndex(e Entity) (int, bool) {
	if !s.Has(e) {
		return 0, false
	}
	return int(s.sparse[e]), true
}

// Index is DenseIndex for callers that already know e is present. Misuse
// panics unless built with the depot_release tag.
func (s *ComponentStore) Index(e Entity) int {
	assert(s.Has(e), func() error {
		return ComponentNotFoundError{Component: s.ct.name, Entity: e}
	})
	return int(s.sparse[e])
}

// Field returns the column handle for one schema field.
func (s *ComponentStore) Field(name string) (Column, error) {
	i, ok := s.byName[name]
	if !ok {
		return nil, UnknownFieldError{Component: s.ct.name, Field: name}
	}
	return s.columns[i], nil
}

// Value reads one field of e. The entity must hold the component.
func (s *ComponentStore) Value(e Entity, field string) float64 {
	i, ok := s.byName[field]
	assert(ok, func() error {
		return UnknownFieldError{Component: s.ct.name, Field: field}
	})
	return s.columns[i].Float64(s.Index(e))
}

// Set writes one field of e and bumps the column version.
func (s *ComponentStore) Set(e Entity, field string, v float64) error {
	i, ok := s.byName[field]
	if !ok {
		return UnknownFieldError{Component: s.ct.name, Field: field}
	}
	idx, ok := s.DenseIndex(e)
	if !ok {
		return ComponentNotFoundError{Component: s.ct.name, Entity: e}
	}
	s.columns[i].SetFloat64(idx, v)
	return nil
}

// Touch bumps the version of a field after writes made directly through
// a slice from FieldOf.
func (s *ComponentStore) Touch(field string) error {
	i, ok := s.byName[field]
	if !ok {
		return UnknownFieldError{Component: s.ct.name, Field: field}
	}
	s.columns[i].touch()
	return nil
}

func (s *ComponentStore) grow(capacity int) {
	next := make([]Entity, capacity)
	copy(next, s.dense)
	s.dense = next
	for _, col := range s.columns {
		col.grow(capacity)
	}
}

func (s *ComponentStore) growSparse(n int) {
	if n <= len(s.sparse) {
		return
	}
	next := make([]int32, n)
	copy(next, s.sparse)
	for i := len(s.sparse); i < n; i++ {
		next[i] = absent
	}
	s.sparse = next
}

// FieldOf returns the typed dense slice behind one field, sized to the
// store's length. The slice is invalidated by the next structural change.
func FieldOf[T Numeric](s *ComponentStore, name string) ([]T, error) {
	i, ok := s.byName[name]
	if !ok {
		return nil, UnknownFieldError{Component: s.ct.name, Field: name}
	}
	col, ok := s.columns[i].(*typedColumn[T])
	if !ok {
		return nil, FieldKindError{Component: s.ct.name, Field: name, Kind: s.columns[i].Kind()}
	}
	return col.data[:s.size], nil
}

// MustFieldOf is FieldOf for schemas known at compile time; it panics on a
// name or kind mismatch.
func MustFieldOf[T Numeric](s *ComponentStore, name string) []T {
	data, err := FieldOf[T](s, name)
	if err != nil {
		panic(err)
	}
	return data
}
