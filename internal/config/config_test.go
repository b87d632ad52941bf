package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	// Keep the user config dir out of the picture.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("todo", flag.ContinueOnError)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := filepath.Join(cfg.WorkDir, DefaultStoreFile)
	if cfg.StoreFile != want {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, want)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `store_file = "tasks.txt"
log_level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "todo.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if filepath.Base(cfg.StoreFile) != "tasks.txt" {
		t.Errorf("StoreFile: got %q, want tasks.txt", cfg.StoreFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "todo.toml"), []byte(`store_file = "from-file.txt"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TODO_FILE", "from-env.txt")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != "from-env.txt" {
		t.Errorf("StoreFile: got %q, want from-env.txt", cfg.StoreFile)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("TODO_FILE", "from-env.txt")
	t.Setenv("TODO_LOG_LEVEL", "info")

	cfg, err := Load(newFlagSet(), []string{"-file", "from-flag.txt", "-log-level", "error"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Base(cfg.StoreFile) != "from-flag.txt" {
		t.Errorf("StoreFile: got %q, want from-flag.txt", cfg.StoreFile)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want error", cfg.LogLevel)
	}
}

func TestAbsoluteStorePathKept(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	abs := filepath.Join(dir, "elsewhere", "todo.txt")
	cfg, err := Load(newFlagSet(), []string{"-file", abs})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StoreFile != abs {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, abs)
	}
}

func TestBoolFromString(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "yes", "on", " on "}
	for _, s := range truthy {
		if !boolFromString(s) {
			t.Errorf("boolFromString(%q): got false, want true", s)
		}
	}
	falsy := []string{"", "0", "false", "off", "nope"}
	for _, s := range falsy {
		if boolFromString(s) {
			t.Errorf("boolFromString(%q): got true, want false", s)
		}
	}
}

func TestExampleConfigIsValidTOML(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(ExampleConfig(), &cfg); err != nil {
		t.Fatalf("example config does not decode: %v", err)
	}
	if cfg.StoreFile != DefaultStoreFile {
		t.Errorf("example store_file: got %q, want %q", cfg.StoreFile, DefaultStoreFile)
	}
}
