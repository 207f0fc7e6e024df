/*
Package depot provides a small Entity-Component-System (ECS) core for games and simulations.

Depot stores each component type in its own sparse set: dense field columns plus a
dense-to-entity and entity-to-dense mapping, so adding, removing and testing membership
are all O(1). Each entity carries a bitmask signature recording which component types it
holds, and every system keeps a cached entity set that is reconciled lazily before it runs.

Core Concepts:

  - Entity: A recycled integer identifier with no payload.
  - Component: A named schema of typed fields, assigned one signature bit.
  - ComponentStore: The columnar pool holding every entity's values for one component.
  - System: A function run each tick over the entities matching a Filter.

Basic Usage:

	world := depot.Factory.NewDefaultWorld()

	position, _ := world.RegisterComponent(depot.NewSchema("Position", depot.F32, "x", "y"))
	velocity, _ := world.RegisterComponent(depot.NewSchema("Velocity", depot.F32, "dx", "dy"))

	e := world.CreateEntity()
	world.AddComponent(e, position, nil)
	world.AddComponent(e, velocity, depot.Values{"dx": 2, "dy": 1})

	world.RegisterSystem("movement", depot.All(position, velocity),
		func(w *depot.World, entities []depot.Entity, dt float64) {
			pos, vel := w.MustStore(position), w.MustStore(velocity)
			x, y := depot.MustFieldOf[float32](pos, "x"), depot.MustFieldOf[float32](pos, "y")
			dx, dy := depot.MustFieldOf[float32](vel, "dx"), depot.MustFieldOf[float32](vel, "dy")
			for _, e := range entities {
				p, v := pos.Index(e), vel.Index(e)
				x[p] += dx[v] * float32(dt)
				y[p] += dy[v] * float32(dt)
			}
		})

	world.Tick(1.0)

Cache maintenance:

A change that can make an entity start matching a system (adding a required component,
removing an excluded one) marks that system stale, and its next reconciliation rescans every
live entity. A change that can only make a member stop matching marks just that entity,
and the next reconciliation re-tests it alone. New matches are therefore visible on the same
tick they occur.

Structural changes made while systems run are rejected; queue them with the Enqueue
methods instead, and they are applied in order at the start of the next Tick.

Building with the depot_release tag removes the lookup assertions in ComponentStore.Index
and ComponentStore.Value.
*/
package depot
