package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "unset"
// from an explicit false/empty value so only present keys override.
type fileConfig struct {
	Sort struct {
		ShowHidden  *bool `toml:"show_hidden"`
		AllowRename *bool `toml:"allow_rename"`
		FoldCase    *bool `toml:"fold_case"`
		Progress    *bool `toml:"progress"`
	} `toml:"sort"`
	Log struct {
		File    *string `toml:"file"`
		Color   *string `toml:"color"`
		Verbose *bool   `toml:"verbose"`
	} `toml:"log"`
}

// DefaultConfigPath returns the absolute path of the default config file.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/extsort/config.toml")
}

// LoadFile applies the TOML file at path on top of cfg. When path is empty
// the default location is used and a missing file is not an error; an
// explicitly named file must exist. Unknown keys are rejected.
func LoadFile(path string, cfg *Config) error {
	explicit := path != ""
	if !explicit {
		def, err := DefaultConfigPath()
		if err != nil {
			return nil
		}
		path = def
	}

	path, err := expandPath(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, de := range strict.Errors {
				keys = append(keys, strings.Join(de.Key(), "."))
			}
			return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
		return fmt.Errorf("config %s: %w", path, err)
	}

	if err := fc.apply(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	if v := fc.Sort.ShowHidden; v != nil {
		cfg.ShowHidden = *v
	}
	if v := fc.Sort.AllowRename; v != nil {
		cfg.AllowRename = *v
	}
	if v := fc.Sort.FoldCase; v != nil {
		cfg.FoldCase = *v
	}
	if v := fc.Sort.Progress; v != nil {
		cfg.Progress = *v
	}
	if v := fc.Log.File; v != nil {
		p, err := expandPath(*v)
		if err != nil {
			return err
		}
		cfg.LogFile = p
	}
	if v := fc.Log.Color; v != nil {
		mode, err := ParseColorMode(*v)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	if v := fc.Log.Verbose; v != nil {
		cfg.Verbose = *v
	}
	return nil
}

// expandPath resolves a leading "~" to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
