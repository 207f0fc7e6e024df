package depot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest declares component schemas in YAML:
//
//	components:
//	  - name: Position
//	    fields:
//	      - {name: x, type: f32}
//	      - {name: y, type: f32}
type Manifest struct {
	Components []ManifestComponent `yaml:"components"`
}

type ManifestComponent struct {
	Name   string          `yaml:"name"`
	Fields []ManifestField `yaml:"fields"`
}

type ManifestField struct {
	Name    string  `yaml:"name"`
	Type    string  `yaml:"type"`
	Default float64 `yaml:"default"`
}

func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Schemas converts the manifest entries, in file order.
func (m *Manifest) Schemas() ([]Schema, error) {
	schemas := make([]Schema, len(m.Components))
	for i, c := range m.Components {
		s := Schema{Name: c.Name, Fields: make([]Field, len(c.Fields))}
		for j, f := range c.Fields {
			kind, ok := ParseFieldKind(f.Type)
			if !ok {
				return nil, InvalidSchemaError{Name: c.Name, Reason: fmt.Sprintf("field %q has unknown type %q", f.Name, f.Type)}
			}
			s.Fields[j] = Field{Name: f.Name, Kind: kind, Default: f.Default}
		}
		schemas[i] = s
	}
	return schemas, nil
}

// Register registers every manifest component with w, in file order, and
// returns the handles by name.
func (m *Manifest) Register(w *World) (map[string]ComponentType, error) {
	schemas, err := m.Schemas()
	if err != nil {
		return nil, err
	}
	handles := make(map[string]ComponentType, len(schemas))
	for _, s := range schemas {
		ct, err := w.RegisterComponent(s)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", s.Name, err)
		}
		handles[s.Name] = ct
	}
	return handles, nil
}
