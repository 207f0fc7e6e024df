package depot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `
components:
  - name: Position
    fields:
      - {name: x, type: f32}
      - {name: y, type: f32}
  - name: Renderable
    fields:
      - {name: w, type: f32, default: 16}
      - {name: h, type: f32, default: 16}
      - {name: color, type: u32}
  - name: PlayerControlled
`

func TestManifestRegister(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	w := Factory.NewDefaultWorld()
	handles, err := m.Register(w)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		bit  uint32
	}{
		{"Position", 0},
		{"Renderable", 1},
		{"PlayerControlled", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, ok := handles[tt.name]
			if !ok {
				t.Fatalf("no handle for %s", tt.name)
			}
			if ct.Bit() != tt.bit {
				t.Errorf("Bit() = %d, want %d", ct.Bit(), tt.bit)
			}
		})
	}

	e := w.CreateEntity()
	w.AddComponent(e, handles["Renderable"], Values{"color": 2})
	store := w.MustStore(handles["Renderable"])
	if got := store.Value(e, "w"); got != 16 {
		t.Errorf("w = %v, want default 16", got)
	}
	if _, err := FieldOf[uint32](store, "color"); err != nil {
		t.Errorf("color column: %v", err)
	}
}

func TestManifestErrors(t *testing.T) {
	if _, err := ParseManifest([]byte("components: [")); err == nil {
		t.Error("ParseManifest(malformed) succeeded")
	}

	m, err := ParseManifest([]byte("components:\n  - name: Bad\n    fields:\n      - {name: v, type: f16}\n"))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	_, err = m.Register(Factory.NewDefaultWorld())
	var schemaErr InvalidSchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("Register() error = %v, want InvalidSchemaError", err)
	}

	dup, _ := ParseManifest([]byte("components:\n  - name: A\n  - name: A\n"))
	_, err = dup.Register(Factory.NewDefaultWorld())
	var dupErr DuplicateComponentError
	if !errors.As(err, &dupErr) {
		t.Errorf("Register() error = %v, want DuplicateComponentError", err)
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "components.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if len(m.Components) != 3 {
		t.Errorf("len(Components) = %d, want 3", len(m.Components))
	}
}
