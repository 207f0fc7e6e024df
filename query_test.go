package depot

import (
	"errors"
	"testing"
)

type testComponents struct {
	pos, vel, health ComponentType
}

func newTestWorld(t testing.TB) (*World, testComponents) {
	t.Helper()
	w := Factory.NewDefaultWorld()
	var c testComponents
	var err error
	if c.pos, err = w.RegisterComponent(NewSchema("Position", F32, "x", "y")); err != nil {
		t.Fatalf("register Position: %v", err)
	}
	if c.vel, err = w.RegisterComponent(NewSchema("Velocity", F32, "dx", "dy")); err != nil {
		t.Fatalf("register Velocity: %v", err)
	}
	if c.health, err = w.RegisterComponent(NewSchema("Health", I32, "current", "max")); err != nil {
		t.Fatalf("register Health: %v", err)
	}
	return w, c
}

func spawn(t testing.TB, w *World, n int, cts ...ComponentType) []Entity {
	t.Helper()
	es := make([]Entity, n)
	for i := range es {
		es[i] = w.CreateEntity()
		for _, ct := range cts {
			if err := w.AddComponent(es[i], ct, nil); err != nil {
				t.Fatalf("AddComponent(%v): %v", ct, err)
			}
		}
	}
	return es
}

func TestQueryFiltering(t *testing.T) {
	w, c := newTestWorld(t)
	spawn(t, w, 5, c.pos, c.vel)
	spawn(t, w, 10, c.pos)
	spawn(t, w, 15, c.vel)
	spawn(t, w, 20, c.health)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"And matches exact", All(c.pos, c.vel), 5},
		{"And single", All(c.pos), 15},
		{"Not excludes", Factory.NewFilter().Not(c.vel), 30},
		{"And with Not", All(c.pos).Not(c.vel), 10},
		{"Empty matches all", Filter{}, 50},
		{"No match", All(c.pos, c.health), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.Count(tt.filter)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFilterIsValue(t *testing.T) {
	_, c := newTestWorld(t)
	base := All(c.pos)
	withVel := base.And(c.vel)
	withoutVel := base.Not(c.vel)
	if len(base.required) != 1 || len(base.excluded) != 0 {
		t.Errorf("base filter mutated: %+v", base)
	}
	if len(withVel.required) != 2 || len(withoutVel.excluded) != 1 {
		t.Errorf("derived filters wrong: %+v %+v", withVel, withoutVel)
	}
}

func TestQueryUnregisteredComponent(t *testing.T) {
	w, _ := newTestWorld(t)
	other, _ := newTestWorld(t)
	foreign, err := other.RegisterComponent(NewSchema("Foreign", F32, "v"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err = w.Each(All(foreign))
	var unreg UnregisteredComponentError
	if !errors.As(err, &unreg) {
		t.Fatalf("Each() error = %v, want UnregisteredComponentError", err)
	}
}

func TestEachStopsEarly(t *testing.T) {
	w, c := newTestWorld(t)
	spawn(t, w, 10, c.pos)
	seq, err := w.Each(All(c.pos))
	if err != nil {
		t.Fatalf("Each() error = %v", err)
	}
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d, want 3", n)
	}
}
