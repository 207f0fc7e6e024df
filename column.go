package depot

// Numeric is the set of element types a field column can hold.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~uint32 | ~uint8
}

// Column is a handle to one field's backing storage, indexed by dense index.
type Column interface {
	Name() string
	Kind() FieldKind
	// Version increases on every write made through the store.
	Version() uint64
	Float64(index int) float64
	SetFloat64(index int, v float64)
}

type column interface {
	Column
	grow(capacity int)
	move(dst, src int)
	reset(index int)
	touch()
}

var (
	_ column = &typedColumn[float32]{}
	_ column = &typedColumn[uint8]{}
)

type typedColumn[T Numeric] struct {
	name    string
	kind    FieldKind
	def     T
	data    []T
	version uint64
}

func newColumn(f Field, capacity int) column {
	switch f.Kind {
	case F32:
		return newTypedColumn[float32](f, capacity)
	case F64:
		return newTypedColumn[float64](f, capacity)
	case I32:
		return newTypedColumn[int32](f, capacity)
	case U32:
		return newTypedColumn[uint32](f, capacity)
	default:
		return newTypedColumn[uint8](f, capacity)
	}
}

func newTypedColumn[T Numeric](f Field, capacity int) *typedColumn[T] {
	return &typedColumn[T]{
		name: f.Name,
		kind: f.Kind,
		def:  T(f.Default),
		data: make([]T, capacity),
	}
}

func (c *typedColumn[T]) Name() string    { return c.name }
func (c *typedColumn[T]) Kind() FieldKind { return c.kind }
func (c *typedColumn[T]) Version() uint64 { return c.version }

func (c *typedColumn[T]) Float64(index int) float64 {
	return float64(c.data[index])
}

func (c *typedColumn[T]) SetFloat64(index int, v float64) {
	c.data[index] = T(v)
	c.version++
}

func (c *typedColumn[T]) grow(capacity int) {
	next := make([]T, capacity)
	copy(next, c.data)
	c.data = next
}

func (c *typedColumn[T]) move(dst, src int) {
	c.data[dst] = c.data[src]
	c.version++
}

func (c *typedColumn[T]) reset(index int) {
	c.data[index] = c.def
	c.version++
}

func (c *typedColumn[T]) touch() {
	c.version++
}
