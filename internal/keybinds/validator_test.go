package keybinds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+c", false},
		{"shift+insert", false},
		{"gg", false},
		{"", true},
		{"ctrl+", true},
		{"super+", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistryDefaults(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() {
		t.Errorf("default registry should validate clean:\n%s", result.String())
	}
}

func TestValidateConfigReservedKeyWarning(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Global:  map[string]string{"ctrl+c": "refresh"},
	}

	result := NewValidator().ValidateConfig(config)
	if !result.HasWarnings() {
		t.Error("rebinding ctrl+c should produce a warning")
	}
}

func TestValidateConfigShadowingWarning(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Global:  map[string]string{"z": "quit"},
		Normal:  map[string]string{"z": "refresh"},
	}

	result := NewValidator().ValidateConfig(config)
	if !result.HasWarnings() {
		t.Error("shadowed global binding should produce a warning")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	registry, err := LoadOrDefault(filepath.Join(t.TempDir(), "keybinds.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}

	if action, ok := registry.Match(ContextNormal, "q"); !ok || action != ActionQuit {
		t.Error("missing config should fall back to defaults")
	}
}

func TestLoadOrDefaultAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	content := `{"version":"1.0","normal":{"x":"export"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	registry, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}

	if action, ok := registry.Match(ContextNormal, "x"); !ok || action != ActionExport {
		t.Errorf("expected override x -> export, got %s (ok=%v)", action, ok)
	}
	// Defaults survive the overlay
	if action, ok := registry.Match(ContextNormal, "c"); !ok || action != ActionCopyToClipboard {
		t.Errorf("expected default c -> copy, got %s (ok=%v)", action, ok)
	}
}

func TestLoadOrDefaultMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for malformed keybinds.json")
	}
}
