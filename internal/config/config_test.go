package config

import (
	"os"
	"reflect"
	"testing"
)

// TestConfig represents a test configuration structure.
type TestConfig struct {
	Config string `help:"Config file path"`

	StringField string   `toml:"test.string_field" env:"STRING_FIELD"`
	BoolField   bool     `toml:"test.bool_field" env:"BOOL_FIELD"`
	IntField    int      `toml:"test.int_field" env:"INT_FIELD"`
	SliceField  []string `toml:"test.slice_field" env:"SLICE_FIELD"`

	NestedString string `toml:"nested.value" env:"NESTED_VALUE"`
}

func writeTempTOML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config_*.toml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		t.Fatalf("Failed to write to temp file: %v", writeErr)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoadFromTOML(t *testing.T) {
	path := writeTempTOML(t, `
[test]
string_field = "hello world"
bool_field = true
int_field = 42
slice_field = ["item1", "item2", "item3"]

[nested]
value = "nested value"
`)

	config := &TestConfig{Config: path}
	if err := Load(config, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.StringField != "hello world" {
		t.Errorf("StringField = %q, want %q", config.StringField, "hello world")
	}
	if !config.BoolField {
		t.Errorf("BoolField = %v, want true", config.BoolField)
	}
	if config.IntField != 42 {
		t.Errorf("IntField = %d, want 42", config.IntField)
	}
	expectedSlice := []string{"item1", "item2", "item3"}
	if !reflect.DeepEqual(config.SliceField, expectedSlice) {
		t.Errorf("SliceField = %v, want %v", config.SliceField, expectedSlice)
	}
	if config.NestedString != "nested value" {
		t.Errorf("NestedString = %q, want %q", config.NestedString, "nested value")
	}
}

func TestLoadFromEnvVars(t *testing.T) {
	t.Setenv("AUDIONODE_STRING_FIELD", "env string")
	t.Setenv("AUDIONODE_BOOL_FIELD", "true")
	t.Setenv("AUDIONODE_INT_FIELD", "123")
	t.Setenv("AUDIONODE_SLICE_FIELD", "a, b ,c")

	config := &TestConfig{}
	if err := Load(config, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.StringField != "env string" {
		t.Errorf("StringField = %q, want %q", config.StringField, "env string")
	}
	if !config.BoolField {
		t.Errorf("BoolField = %v, want true", config.BoolField)
	}
	if config.IntField != 123 {
		t.Errorf("IntField = %d, want 123", config.IntField)
	}
	expectedSlice := []string{"a", "b", "c"}
	if !reflect.DeepEqual(config.SliceField, expectedSlice) {
		t.Errorf("SliceField = %v, want %v", config.SliceField, expectedSlice)
	}
}

func TestLoadEnvOverridesTOML(t *testing.T) {
	path := writeTempTOML(t, `
[test]
string_field = "toml value"
int_field = 100
`)

	t.Setenv("AUDIONODE_STRING_FIELD", "env override")

	config := &TestConfig{Config: path}
	if err := Load(config, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.StringField != "env override" {
		t.Errorf("StringField = %q, want env override", config.StringField)
	}
	if config.IntField != 100 {
		t.Errorf("IntField = %d, want 100 from TOML", config.IntField)
	}
}

func TestLoadMissingFile(t *testing.T) {
	config := &TestConfig{Config: "nonexistent_file.toml"}
	if err := Load(config, nil); err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeTempTOML(t, `
[test
invalid toml syntax
`)

	config := &TestConfig{Config: path}
	if err := Load(config, nil); err == nil {
		t.Fatal("Load should fail for invalid TOML")
	}
}

func TestGetNestedValue(t *testing.T) {
	data := map[string]any{
		"level1": map[string]any{
			"level2": map[string]any{
				"value": "nested_value",
			},
			"simple": "simple_value",
		},
		"root": "root_value",
	}

	tests := []struct {
		path     string
		expected any
	}{
		{"root", "root_value"},
		{"level1.simple", "simple_value"},
		{"level1.level2.value", "nested_value"},
		{"nonexistent", nil},
		{"level1.nonexistent", nil},
	}

	for _, test := range tests {
		result := getNestedValue(data, test.path)
		if result != test.expected {
			t.Errorf("getNestedValue(%q) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := map[string]string{
		"Port":         "port",
		"LoggingLevel": "logging-level",
		"AuthUsername": "auth-username",
		"DevicesFile":  "devices-file",
	}
	for in, want := range tests {
		if got := fieldNameToFlag(in); got != want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadDevicePins(t *testing.T) {
	path := writeTempTOML(t, `
[devices]
playback = "alsa:hw:1,0"
notify = "alsa:hw:0,0"
`)

	pins, err := LoadDevicePins(path)
	if err != nil {
		t.Fatalf("LoadDevicePins: %v", err)
	}
	if pins.Devices.Playback != "alsa:hw:1,0" {
		t.Errorf("Playback = %q, want %q", pins.Devices.Playback, "alsa:hw:1,0")
	}
	if pins.Devices.Notify != "alsa:hw:0,0" {
		t.Errorf("Notify = %q, want %q", pins.Devices.Notify, "alsa:hw:0,0")
	}
}

func TestLoadDevicePins_MissingFile(t *testing.T) {
	pins, err := LoadDevicePins("nonexistent_devices.toml")
	if err != nil {
		t.Fatalf("LoadDevicePins should not fail for missing file: %v", err)
	}
	if pins.Devices.Playback != "" || pins.Devices.Notify != "" {
		t.Errorf("expected zero pins, got %+v", pins)
	}
}
