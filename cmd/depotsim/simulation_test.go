package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TheBitDrifter/depot"
)

func TestSimulationConfinesMovers(t *testing.T) {
	world := depot.Factory.NewDefaultWorld()
	sim, err := newSimulation(world, options{entities: 50, bounds: 1, seed: 7})
	if err != nil {
		t.Fatalf("newSimulation() error = %v", err)
	}

	for i := 0; i < 200; i++ {
		if err := world.Tick(0.1); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
	if world.Len() != 50 {
		t.Errorf("Len() = %d, want 50", world.Len())
	}
	// Removals queued by the last tick are still pending.
	if got, want := sim.movement.Len(), 50-sim.escaped+world.Pending(); got != want {
		t.Errorf("moving = %d, want %d (escaped %d, pending %d)", got, want, sim.escaped, world.Pending())
	}
	if sim.escaped == 0 {
		t.Error("no mover escaped a 1-unit arena in 20 seconds")
	}
}

func TestSimulationQueueMover(t *testing.T) {
	world := depot.Factory.NewDefaultWorld()
	sim, err := newSimulation(world, options{entities: 0, bounds: 100, seed: 1})
	if err != nil {
		t.Fatalf("newSimulation() error = %v", err)
	}
	sim.queueMover()
	world.Tick(0)
	if sim.movement.Len() != 1 {
		t.Errorf("moving = %d, want 1", sim.movement.Len())
	}
}

func TestSimulationManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "components.yaml")
	manifest := "components:\n" +
		"  - name: Position\n    fields: [{name: x, type: f32}, {name: y, type: f32}]\n" +
		"  - name: Velocity\n    fields: [{name: dx, type: f32}, {name: dy, type: f32}]\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := newSimulation(depot.Factory.NewDefaultWorld(), options{manifest: path, entities: 3}); err != nil {
		t.Fatalf("newSimulation() error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("components:\n  - name: Position\n"), 0o644)
	if _, err := newSimulation(depot.Factory.NewDefaultWorld(), options{manifest: bad}); err == nil {
		t.Error("manifest without Velocity accepted")
	}
}

func TestNewLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := newLogger(depot.LoggingSettings{Level: "debug", Format: format})
		if err != nil {
			t.Fatalf("newLogger(%s) error = %v", format, err)
		}
		log.Debug("ok")
	}
}
