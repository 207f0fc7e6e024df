package depot

// componentRegistry assigns bits in registration order and owns one store
// per component type.
type componentRegistry struct {
	width    int
	capacity int
	entities int
	stores   []*ComponentStore
	byName   map[string]int
}

func newComponentRegistry(width, capacity, entities int) *componentRegistry {
	return &componentRegistry{
		width:    width,
		capacity: capacity,
		entities: entities,
		stores:   make([]*ComponentStore, 0, width),
		byName:   make(map[string]int, width),
	}
}

func (r *componentRegistry) register(schema Schema) (ComponentType, error) {
	if err := schema.validate(); err != nil {
		return ComponentType{}, err
	}
	if _, dup := r.byName[schema.Name]; dup {
		return ComponentType{}, DuplicateComponentError{Name: schema.Name}
	}
	if len(r.stores) >= r.width {
		return ComponentType{}, ComponentLimitError{Name: schema.Name, Width: r.width}
	}
	bit := uint32(len(r.stores))
	ct := newComponentType(schema.Name, bit)
	r.stores = append(r.stores, newComponentStore(ct, schema, r.capacity, r.entities))
	r.byName[schema.Name] = int(bit)
	return ct, nil
}

// store resolves a handle, rejecting handles minted by another world.
func (r *componentRegistry) store(ct ComponentType) (*ComponentStore, error) {
	if int(ct.bit) < len(r.stores) {
		if s := r.stores[ct.bit]; s.ct.name == ct.name && ct.name != "" {
			return s, nil
		}
	}
	return nil, UnregisteredComponentError{Name: ct.name}
}

func (r *componentRegistry) lookup(name string) (ComponentType, bool) {
	i, ok := r.byName[name]
	if !ok {
		return ComponentType{}, false
	}
	return r.stores[i].ct, true
}

func (r *componentRegistry) all() []*ComponentStore {
	return r.stores
}
