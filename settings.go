package depot

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings sizes a world. Zero values are replaced by DefaultSettings when
// decoded from a file.
type Settings struct {
	// SignatureWidth is the maximum number of component types: 32 or 64.
	SignatureWidth  int             `toml:"signature_width"`
	InitialEntities int             `toml:"initial_entities"`
	StoreCapacity   int             `toml:"store_capacity"`
	Logging         LoggingSettings `toml:"logging"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func DefaultSettings() Settings {
	return Settings{
		SignatureWidth:  64,
		InitialEntities: 1024,
		StoreCapacity:   256,
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

func (s Settings) Validate() error {
	if s.SignatureWidth != 32 && s.SignatureWidth != 64 {
		return InvalidSettingsError{Field: "signature_width", Reason: fmt.Sprintf("%d is not 32 or 64", s.SignatureWidth)}
	}
	if s.InitialEntities < 0 {
		return InvalidSettingsError{Field: "initial_entities", Reason: "negative"}
	}
	if s.StoreCapacity < 1 {
		return InvalidSettingsError{Field: "store_capacity", Reason: "must be at least 1"}
	}
	return nil
}

// LoadSettings reads a TOML settings file over the defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
