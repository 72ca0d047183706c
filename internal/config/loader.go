package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDifficulty = "HANGMAN_DIFFICULTY"
	EnvSSHAddr    = "HANGMAN_SSH_ADDR"
	EnvLogLevel   = "HANGMAN_LOG_LEVEL"
)

// sources lists where Load looks for settings. Tests point it at temp dirs.
type sources struct {
	userPath  string // ~/.hangman/config.yaml
	localPath string // ./configs/hangman.yaml
	envFile   string // ./.env
	lookupEnv func(string) (string, bool)
}

func defaultSources() sources {
	return sources{
		userPath:  userConfigPath("config.yaml"),
		localPath: filepath.Join("configs", "hangman.yaml"),
		envFile:   ".env",
		lookupEnv: os.LookupEnv,
	}
}

// Load loads the configuration.
// Search order: customPath -> ~/.hangman/config.yaml -> ./configs/hangman.yaml -> embedded default.
// The file found is layered over the defaults, so it may set only some fields.
// Variables from the process environment or ./.env then override file values.
func Load(customPath string) (Config, string, error) {
	return load(customPath, defaultSources())
}

func load(customPath string, src sources) (Config, string, error) {
	cfg := DefaultConfig()

	// Embedded default YAML; the hardcoded defaults stand if it fails
	//nolint:errcheck // DefaultConfig already holds the same values
	yaml.Unmarshal(defaultYAML, &cfg)
	source := "embedded"

	if customPath != "" {
		// Custom path must exist and parse
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		source = customPath
	} else {
		for _, path := range []string{src.userPath, src.localPath} {
			if path == "" {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			// Unparseable files are skipped like missing ones
			next := cfg
			if err := yaml.Unmarshal(data, &next); err != nil {
				continue
			}
			cfg = next
			source = path
			break
		}
	}

	if err := applyEnv(&cfg, src); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// applyEnv overrides cfg from the environment. Process variables win over .env.
func applyEnv(cfg *Config, src sources) error {
	dotenv := map[string]string{}
	if src.envFile != "" {
		vals, err := godotenv.Read(src.envFile)
		switch {
		case err == nil:
			dotenv = vals
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("failed to read %s: %w", src.envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if src.lookupEnv != nil {
			if v, ok := src.lookupEnv(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvDifficulty); ok && v != "" {
		cfg.Difficulty = v
	}
	if v, ok := lookup(EnvSSHAddr); ok && v != "" {
		cfg.SSH.Address = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
