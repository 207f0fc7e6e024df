package depot

import (
	"github.com/TheBitDrifter/mask"
)

// Filter selects entities holding every And component and none of the Not
// components. Filters are values; each method returns an extended copy.
type Filter struct {
	required []ComponentType
	excluded []ComponentType
}

// All is shorthand for Factory.NewFilter().And(components...).
func All(components ...ComponentType) Filter {
	return Filter{}.And(components...)
}

func (f Filter) And(components ...ComponentType) Filter {
	f.required = append(append([]ComponentType(nil), f.required...), components...)
	return f
}

func (f Filter) Not(components ...ComponentType) Filter {
	f.excluded = append(append([]ComponentType(nil), f.excluded...), components...)
	return f
}

// compile resolves the filter against a registry into bitmasks.
func (f Filter) compile(reg *componentRegistry) (required, excluded mask.Mask, err error) {
	for _, ct := range f.required {
		if _, err := reg.store(ct); err != nil {
			return required, excluded, err
		}
		required.Mark(ct.bit)
	}
	for _, ct := range f.excluded {
		if _, err := reg.store(ct); err != nil {
			return required, excluded, err
		}
		excluded.Mark(ct.bit)
	}
	return required, excluded, nil
}

func matches(sig, required, excluded mask.Mask) bool {
	if required != (mask.Mask{}) && !sig.ContainsAll(required) {
		return false
	}
	if excluded != (mask.Mask{}) && sig.ContainsAny(excluded) {
		return false
	}
	return true
}

// overlaps reports whether any bit of ct is in m.
func overlaps(m mask.Mask, ct ComponentType) bool {
	return m.ContainsAny(ct.mask)
}
