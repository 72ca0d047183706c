package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/hangman"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

// testSources returns sources rooted in a temp dir with an empty environment.
func testSources(t *testing.T) (sources, string) {
	t.Helper()
	dir := t.TempDir()
	return sources{
		userPath:  filepath.Join(dir, "home", "config.yaml"),
		localPath: filepath.Join(dir, "configs", "hangman.yaml"),
		envFile:   filepath.Join(dir, ".env"),
		lookupEnv: func(string) (string, bool) { return "", false },
	}, dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	src, _ := testSources(t)
	cfg, source, err := load("", src)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, want embedded", source)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	src, _ := testSources(t)
	writeFile(t, src.localPath, "difficulty: medium\n")

	cfg, source, err := load("", src)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if source != src.localPath || cfg.Difficulty != "medium" {
		t.Errorf("got difficulty %q from %q, want medium from local", cfg.Difficulty, source)
	}

	// User config takes precedence over local
	writeFile(t, src.userPath, "difficulty: hard\n")
	cfg, source, err = load("", src)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if source != src.userPath || cfg.Difficulty != "hard" {
		t.Errorf("got difficulty %q from %q, want hard from user", cfg.Difficulty, source)
	}

	// Partial files keep the remaining defaults
	if cfg.SSH.Address != ":23234" || cfg.SSH.IdleTimeout != 30*time.Minute {
		t.Errorf("defaults lost: %+v", cfg.SSH)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	src, _ := testSources(t)
	writeFile(t, src.userPath, "difficulty: [unclosed\n")
	writeFile(t, src.localPath, "difficulty: medium\n")

	cfg, source, err := load("", src)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if source != src.localPath || cfg.Difficulty != "medium" {
		t.Errorf("got %q from %q, want medium from local", cfg.Difficulty, source)
	}
}

func TestLoadCustomPath(t *testing.T) {
	src, dir := testSources(t)
	custom := filepath.Join(dir, "custom.yaml")
	writeFile(t, custom, strings.Join([]string{
		"difficulty: Hard",
		"seed: 99",
		"ssh:",
		"  address: \":2222\"",
		"  idle_timeout: 5m",
		"theme:",
		"  accent: \"33\"",
	}, "\n"))
	writeFile(t, src.userPath, "difficulty: medium\n")

	cfg, source, err := load(custom, src)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if source != custom {
		t.Errorf("source = %q, want %q", source, custom)
	}
	if cfg.Seed != 99 || cfg.SSH.Address != ":2222" || cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Theme.Accent != "33" || cfg.Theme.Muted != "245" {
		t.Errorf("theme = %+v, want accent 33 and default muted", cfg.Theme)
	}

	d, err := cfg.StartDifficulty()
	if err != nil || d != hangman.Hard {
		t.Errorf("StartDifficulty() = %v, %v; want hard", d, err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	src, dir := testSources(t)

	if _, _, err := load(filepath.Join(dir, "missing.yaml"), src); err == nil {
		t.Error("load() with missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "ssh: [1, 2\n")
	if _, _, err := load(bad, src); err == nil {
		t.Error("load() with unparseable custom path should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	src, _ := testSources(t)
	writeFile(t, src.userPath, "difficulty: medium\nlog:\n  level: warn\n")
	writeFile(t, src.envFile, "HANGMAN_DIFFICULTY=hard\nHANGMAN_SSH_ADDR=:4000\n")

	env := map[string]string{EnvSSHAddr: ":5000", EnvLogLevel: "debug"}
	src.lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg, _, err := load("", src)
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}

	// .env beats the file, the process environment beats .env
	if cfg.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want hard from .env", cfg.Difficulty)
	}
	if cfg.SSH.Address != ":5000" {
		t.Errorf("SSH.Address = %q, want :5000 from environment", cfg.SSH.Address)
	}
	lvl, err := cfg.LogLevel()
	if err != nil || lvl != log.DebugLevel {
		t.Errorf("LogLevel() = %v, %v; want debug", lvl, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad difficulty", func(c *Config) { c.Difficulty = "nightmare" }, "difficulty"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"empty address", func(c *Config) { c.SSH.Address = "" }, "ssh.address"},
		{"zero timeout", func(c *Config) { c.SSH.IdleTimeout = 0 }, "ssh.idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.hangman/host_key")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".hangman", "host_key"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}
	if got, _ := ExpandHome("./key"); got != "./key" {
		t.Errorf("ExpandHome(./key) = %q", got)
	}
}
