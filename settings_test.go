package depot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Settings
		wantErr bool
	}{
		{
			name:  "empty keeps defaults",
			input: "",
			want:  DefaultSettings(),
		},
		{
			name: "overrides",
			input: `
signature_width = 32
initial_entities = 4096
store_capacity = 16

[logging]
level = "debug"
format = "json"
`,
			want: Settings{
				SignatureWidth:  32,
				InitialEntities: 4096,
				StoreCapacity:   16,
				Logging:         LoggingSettings{Level: "debug", Format: "json"},
			},
		},
		{
			name:    "bad width",
			input:   "signature_width = 48",
			wantErr: true,
		},
		{
			name:    "bad capacity",
			input:   "store_capacity = 0",
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   "signature_width = ",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettings([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.toml")
	if err := os.WriteFile(path, []byte("signature_width = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.SignatureWidth != 32 {
		t.Errorf("SignatureWidth = %d, want 32", s.SignatureWidth)
	}
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadSettings(missing) succeeded")
	}
}

func TestNewWorldRejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.SignatureWidth = 128
	_, err := Factory.NewWorld(s)
	var invalid InvalidSettingsError
	if !errors.As(err, &invalid) {
		t.Fatalf("NewWorld() error = %v, want InvalidSettingsError", err)
	}
	if invalid.Field != "signature_width" {
		t.Errorf("Field = %q", invalid.Field)
	}
}
