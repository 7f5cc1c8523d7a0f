package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandEnvStrict_SetVariable(t *testing.T) {
	t.Setenv("DT_TEST_ADDR", "127.0.0.1")

	out, err := ExpandEnvStrict("address: ${DT_TEST_ADDR}")
	require.NoError(t, err)
	require.Equal(t, "address: 127.0.0.1", out)
}

func TestExpandEnvStrict_MissingVariablesReportedTogether(t *testing.T) {
	os.Unsetenv("DT_TEST_MISSING_A")
	os.Unsetenv("DT_TEST_MISSING_B")

	_, err := ExpandEnvStrict("a: ${DT_TEST_MISSING_A}\nb: ${DT_TEST_MISSING_B}")
	require.Error(t, err)
	require.Contains(t, err.Error(), "DT_TEST_MISSING_A")
	require.Contains(t, err.Error(), "DT_TEST_MISSING_B")
}

func TestExpandEnvStrict_DefaultUsedWhenUnset(t *testing.T) {
	os.Unsetenv("DT_TEST_PORT")

	out, err := ExpandEnvStrict("port: ${DT_TEST_PORT:-8080}")
	require.NoError(t, err)
	require.Equal(t, "port: 8080", out)
}

func TestExpandEnvStrict_EnvironmentBeatsDefault(t *testing.T) {
	t.Setenv("DT_TEST_PORT", "9090")

	out, err := ExpandEnvStrict("port: ${DT_TEST_PORT:-8080}")
	require.NoError(t, err)
	require.Equal(t, "port: 9090", out)
}

func TestLoadAndExpandYaml_MissingFile(t *testing.T) {
	_, err := LoadAndExpandYaml(t.TempDir(), "application")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadAndExpandYaml_ExpandsReferences(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DT_TEST_PROFILE", "node")
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "application.yml"),
		[]byte("application:\n  profile: ${DT_TEST_PROFILE}\n"), 0o644))

	out, err := LoadAndExpandYaml(dir, "application")
	require.NoError(t, err)
	require.Contains(t, out, "profile: node")
}
