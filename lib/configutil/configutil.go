// Package configutil reads json5 configuration files with optional
// `.local` overrides, the same convention every binary in this repo
// uses for credentials and telemetry endpoints.
package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// ReadConfig reads `name` (extension included) and, when present, a
// sibling `<name>.local.<ext>` file whose values win over the base
// file. Returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found := false

	base, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(base) > 0 {
		if err := json5.Unmarshal(base, &out); err != nil {
			return out, err
		}
		found = true
	}

	ext := filepath.Ext(name)
	localPath := fmt.Sprintf("%s.local%s", strings.TrimSuffix(name, ext), ext)
	local, err := os.ReadFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(local) > 0 {
		var override T
		if err := json5.Unmarshal(local, &override); err != nil {
			return out, err
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks up from the working directory to the
// filesystem root looking for a config file matching `name`.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	root, err := filepath.Abs("/")
	if err != nil {
		return zero, err
	}
	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for current != root {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if os.IsNotExist(err) {
			current = filepath.Join(current, "..")
			continue
		}
		if err != nil {
			return zero, err
		}
		return config, nil
	}

	return zero, os.ErrNotExist
}
