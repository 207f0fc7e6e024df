package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/TheBitDrifter/depot"
)

type simulation struct {
	world    *depot.World
	rng      *rand.Rand
	bounds   float64
	position depot.ComponentType
	velocity depot.ComponentType
	movement *depot.System
	escaped  int
}

func newSimulation(world *depot.World, opts options) (*simulation, error) {
	sim := &simulation{
		world:  world,
		rng:    rand.New(rand.NewSource(opts.seed)),
		bounds: opts.bounds,
	}
	if err := sim.registerComponents(opts.manifest); err != nil {
		return nil, err
	}

	var err error
	sim.movement, err = world.RegisterSystem("movement", depot.All(sim.position, sim.velocity), sim.move)
	if err != nil {
		return nil, fmt.Errorf("register movement: %w", err)
	}
	if _, err := world.RegisterSystem("bounds", depot.All(sim.position, sim.velocity), sim.confine); err != nil {
		return nil, fmt.Errorf("register bounds: %w", err)
	}

	for i := 0; i < opts.entities; i++ {
		e := world.CreateEntity()
		if err := world.AddComponent(e, sim.position, nil); err != nil {
			return nil, err
		}
		if err := world.AddComponent(e, sim.velocity, sim.randomVelocity()); err != nil {
			return nil, err
		}
	}
	return sim, nil
}

func (s *simulation) registerComponents(manifestPath string) error {
	if manifestPath == "" {
		var err error
		if s.position, err = s.world.RegisterComponent(depot.NewSchema("Position", depot.F32, "x", "y")); err != nil {
			return err
		}
		s.velocity, err = s.world.RegisterComponent(depot.NewSchema("Velocity", depot.F32, "dx", "dy"))
		return err
	}

	m, err := depot.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	handles, err := m.Register(s.world)
	if err != nil {
		return err
	}
	var ok bool
	if s.position, ok = handles["Position"]; !ok {
		return fmt.Errorf("manifest %s: no Position component", manifestPath)
	}
	if s.velocity, ok = handles["Velocity"]; !ok {
		return fmt.Errorf("manifest %s: no Velocity component", manifestPath)
	}
	return nil
}

func (s *simulation) randomVelocity() depot.Values {
	return depot.Values{
		"dx": (s.rng.Float64() - 0.5) * 40,
		"dy": (s.rng.Float64() - 0.5) * 30,
	}
}

// queueMover spawns through the command queue, the way input handlers do.
func (s *simulation) queueMover() {
	spawnMover(s.world, s.position, s.velocity, s.randomVelocity())
}

func spawnMover(cmd depot.Commander, position, velocity depot.ComponentType, v depot.Values) {
	cmd.EnqueueCreateEntity(
		depot.Init{Type: position},
		depot.Init{Type: velocity, Values: v},
	)
}

func (s *simulation) move(w *depot.World, entities []depot.Entity, dt float64) {
	pos, vel := w.MustStore(s.position), w.MustStore(s.velocity)
	x, y := depot.MustFieldOf[float32](pos, "x"), depot.MustFieldOf[float32](pos, "y")
	dx, dy := depot.MustFieldOf[float32](vel, "dx"), depot.MustFieldOf[float32](vel, "dy")
	for _, e := range entities {
		p, v := pos.Index(e), vel.Index(e)
		x[p] += dx[v] * float32(dt)
		y[p] += dy[v] * float32(dt)
	}
	pos.Touch("x")
	pos.Touch("y")
}

// confine stops movers that left the arena by queueing removal of their
// velocity; the movement cache drops them on the next tick.
func (s *simulation) confine(w *depot.World, entities []depot.Entity, _ float64) {
	pos := w.MustStore(s.position)
	for _, e := range entities {
		if math.Abs(pos.Value(e, "x")) > s.bounds || math.Abs(pos.Value(e, "y")) > s.bounds {
			w.EnqueueRemoveComponent(e, s.velocity)
			s.escaped++
		}
	}
}
