package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LoadAndExpandYaml reads <dir>/<name>.yml and resolves its environment
// references before the caller unmarshals it.
func LoadAndExpandYaml(dir, name string) (string, error) {
	path := filepath.Join(dir, name+".yml")

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("config file %s not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return ExpandEnvStrict(string(raw))
}
