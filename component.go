package depot

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
)

// FieldKind is the element type of one schema field's backing array.
type FieldKind uint8

const (
	F32 FieldKind = iota + 1
	F64
	I32
	U32
	U8
)

func (k FieldKind) String() string {
	switch k {
	case F32:
		return "f32"
	case F64:
		return "f64"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case U8:
		return "u8"
	}
	return fmt.Sprintf("FieldKind(%d)", uint8(k))
}

// ParseFieldKind maps the short names used in manifests ("f32", "u8", ...)
// to a FieldKind.
func ParseFieldKind(s string) (FieldKind, bool) {
	switch s {
	case "f32":
		return F32, true
	case "f64":
		return F64, true
	case "i32":
		return I32, true
	case "u32":
		return U32, true
	case "u8":
		return U8, true
	}
	return 0, false
}

// Field is one named, typed column of a component schema. Default is the
// value a freshly added entity starts with when no override is given.
type Field struct {
	Name    string
	Kind    FieldKind
	Default float64
}

// Schema describes a component type: its unique name and its fields.
// A schema with no fields is a tag component.
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema is shorthand for a schema whose fields all share one kind and
// default to zero.
func NewSchema(name string, kind FieldKind, fields ...string) Schema {
	s := Schema{Name: name, Fields: make([]Field, len(fields))}
	for i, f := range fields {
		s.Fields[i] = Field{Name: f, Kind: kind}
	}
	return s
}

func (s Schema) validate() error {
	if s.Name == "" {
		return InvalidSchemaError{Name: s.Name, Reason: "empty name"}
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return InvalidSchemaError{Name: s.Name, Reason: "empty field name"}
		}
		if _, dup := seen[f.Name]; dup {
			return InvalidSchemaError{Name: s.Name, Reason: fmt.Sprintf("duplicate field %q", f.Name)}
		}
		if f.Kind < F32 || f.Kind > U8 {
			return InvalidSchemaError{Name: s.Name, Reason: fmt.Sprintf("field %q has unknown kind %v", f.Name, f.Kind)}
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// ComponentType is the handle returned by World.RegisterComponent. Its bit
// position is fixed for the lifetime of the world.
type ComponentType struct {
	name string
	bit  uint32
	mask mask.Mask
}

func newComponentType(name string, bit uint32) ComponentType {
	ct := ComponentType{name: name, bit: bit}
	ct.mask.Mark(bit)
	return ct
}

func (c ComponentType) Name() string { return c.name }

func (c ComponentType) Bit() uint32 { return c.bit }

// Mask returns a mask with only this component's bit set.
func (c ComponentType) Mask() mask.Mask { return c.mask }

func (c ComponentType) String() string {
	return fmt.Sprintf("%s#%d", c.name, c.bit)
}

// Values holds per-field initial values keyed by field name.
type Values map[string]float64
