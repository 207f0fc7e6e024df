package depot

import "fmt"

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked"
}

type DuplicateComponentError struct {
	Name string
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component already registered: %s", e.Name)
}

// ComponentLimitError is returned when registration would exceed the
// signature width.
type ComponentLimitError struct {
	Name  string
	Width int
}

func (e ComponentLimitError) Error() string {
	return fmt.Sprintf("cannot register %s: signature width of %d component types exhausted", e.Name, e.Width)
}

type UnregisteredComponentError struct {
	Name string
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component not registered: %s", e.Name)
}

type InvalidSchemaError struct {
	Name   string
	Reason string
}

func (e InvalidSchemaError) Error() string {
	return fmt.Sprintf("invalid schema %q: %s", e.Name, e.Reason)
}

type UnknownFieldError struct {
	Component string
	Field     string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("component %s has no field %q", e.Component, e.Field)
}

type FieldKindError struct {
	Component string
	Field     string
	Kind      FieldKind
}

func (e FieldKindError) Error() string {
	return fmt.Sprintf("field %s.%s is %s", e.Component, e.Field, e.Kind)
}

type ComponentNotFoundError struct {
	Component string
	Entity    Entity
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %d: %s", e.Entity, e.Component)
}

type DeadEntityError struct {
	Entity Entity
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %d is not alive", e.Entity)
}

type InvalidSettingsError struct {
	Field  string
	Reason string
}

func (e InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid setting %s: %s", e.Field, e.Reason)
}
