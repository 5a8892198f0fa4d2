package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source names reported by LoadStick when no file was used.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadStick loads the stick game configuration and reports where it came from.
// Search order: customPath -> ~/.stick/configs/stick.{yaml,toml} ->
// ./configs/stick.yaml -> embedded default.
// Files only need to name the values they change; everything else keeps
// its default.
func LoadStick(customPath string) (StickConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StickConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, customPath)
		if err != nil {
			return StickConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	for _, name := range []string{"stick.yaml", "stick.toml"} {
		userCfgPath := userConfigPath(name)
		if userCfgPath == "" {
			break
		}
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data, userCfgPath); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "stick.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := decode(data, localPath); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultStickYAML, "stick.yaml")
	if err != nil {
		return DefaultStickConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decode parses data on top of the defaults, picking the format from the
// file extension. Unknown keys are rejected so typos do not go unnoticed.
func decode(data []byte, path string) (StickConfig, error) {
	cfg := DefaultStickConfig()

	if isTOML(path) {
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return StickConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return StickConfig{}, fmt.Errorf("config: unknown keys in %s: %v", path, undecoded)
		}
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return StickConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg in the given format ("yaml" or "toml").
func Encode(w io.Writer, cfg StickConfig, format string) error {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("config: unknown format %q (want yaml or toml)", format)
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stick", "configs", filename)
}
