package depot

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Init pairs a component type with its initial values for queued creation.
type Init struct {
	Type   ComponentType
	Values Values
}

type commandType int

const (
	cmdCreate commandType = iota
	cmdDestroy
	cmdAddComponent
	cmdRemoveComponent
	cmdSetField
)

func (t commandType) String() string {
	switch t {
	case cmdCreate:
		return "create"
	case cmdDestroy:
		return "destroy"
	case cmdAddComponent:
		return "add"
	case cmdRemoveComponent:
		return "remove"
	case cmdSetField:
		return "set"
	}
	return "unknown"
}

type command struct {
	typ        commandType
	entity     Entity
	generation uint32
	dead       bool
	ct         ComponentType
	values     Values
	field      string
	value      float64
	inits      []Init
}

// commandQueue is a strict FIFO; commands are validated when applied, not
// when queued.
type commandQueue struct {
	ops []command
}

func (q *commandQueue) push(op command) {
	q.ops = append(q.ops, op)
}

// Pending returns the number of queued commands.
func (w *World) Pending() int { return len(w.queue.ops) }

// EnqueueCreateEntity queues a new entity with the given components. The
// inits and their values are copied.
func (w *World) EnqueueCreateEntity(inits ...Init) {
	inits = slices.Clone(inits)
	for i := range inits {
		inits[i].Values = maps.Clone(inits[i].Values)
	}
	w.queue.push(command{typ: cmdCreate, inits: inits})
}

func (w *World) EnqueueDestroyEntity(e Entity) {
	w.queue.push(w.entityCommand(cmdDestroy, e))
}

func (w *World) EnqueueAddComponent(e Entity, ct ComponentType, values Values) {
	op := w.entityCommand(cmdAddComponent, e)
	op.ct = ct
	op.values = maps.Clone(values)
	w.queue.push(op)
}

func (w *World) EnqueueRemoveComponent(e Entity, ct ComponentType) {
	op := w.entityCommand(cmdRemoveComponent, e)
	op.ct = ct
	w.queue.push(op)
}

// EnqueueSetField writes one field at apply time if e still holds ct.
func (w *World) EnqueueSetField(e Entity, ct ComponentType, field string, v float64) {
	op := w.entityCommand(cmdSetField, e)
	op.ct = ct
	op.field = field
	op.value = v
	w.queue.push(op)
}

// entityCommand stamps e's generation. A command queued for an entity that
// is already dead stays dead even if the id is recycled before it applies.
func (w *World) entityCommand(typ commandType, e Entity) command {
	return command{
		typ:        typ,
		entity:     e,
		generation: w.entities.generation(e),
		dead:       !w.entities.isAlive(e),
	}
}

func (w *World) processCommandQueue() error {
	if len(w.queue.ops) == 0 {
		return nil
	}
	var errs []error
	for i := range w.queue.ops {
		op := &w.queue.ops[i]
		if err := w.apply(op); err != nil {
			w.log.Warn("queued command failed",
				zap.Stringer("op", op.typ),
				zap.Uint32("entity", uint32(op.entity)),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("queued %s: %w", op.typ, err))
		}
	}
	clear(w.queue.ops)
	w.queue.ops = w.queue.ops[:0]
	return errors.Join(errs...)
}

func (w *World) apply(op *command) error {
	if op.typ == cmdCreate {
		return w.applyCreate(op.inits)
	}
	// The entity may have died, or died and been recycled, since queueing.
	if op.dead || !w.entities.isAlive(op.entity) || w.entities.generation(op.entity) != op.generation {
		w.log.Debug("skipping stale command",
			zap.Stringer("op", op.typ),
			zap.Uint32("entity", uint32(op.entity)),
		)
		return nil
	}
	switch op.typ {
	case cmdDestroy:
		return w.DestroyEntity(op.entity)
	case cmdAddComponent:
		return w.AddComponent(op.entity, op.ct, op.values)
	case cmdRemoveComponent:
		return w.RemoveComponent(op.entity, op.ct)
	case cmdSetField:
		store, err := w.components.store(op.ct)
		if err != nil {
			return err
		}
		if !store.Has(op.entity) {
			return nil
		}
		return store.Set(op.entity, op.field, op.value)
	}
	return fmt.Errorf("unknown command %d", op.typ)
}

// applyCreate checks every init before creating the entity, so a failed
// create leaves nothing behind.
func (w *World) applyCreate(inits []Init) error {
	for _, in := range inits {
		store, err := w.components.store(in.Type)
		if err != nil {
			return err
		}
		if err := store.checkValues(in.Values); err != nil {
			return err
		}
	}
	e := w.CreateEntity()
	for _, in := range inits {
		if err := w.AddComponent(e, in.Type, in.Values); err != nil {
			return fmt.Errorf("entity %d: %w", e, err)
		}
	}
	return nil
}
