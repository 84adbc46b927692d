package efconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_ReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPath_ReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_PlainJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "efrepl.json")
	writeFile(t, path, `{"history_size": 42, "default_upper_bound": 99}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{HistorySize: 42, DefaultUpperBound: 99}, cfg)
}

func TestLoad_HujsonWithComments(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "efrepl.json")
	writeFile(t, path, `{
		// history size in lines
		"history_size": 10,
		"default_upper_bound": 500,
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Config{HistorySize: 10, DefaultUpperBound: 500}, cfg)
}

func TestLoad_InvalidJSON_ReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "efrepl.json")
	writeFile(t, path, `{not valid`)

	_, err := Load(path)
	require.Error(t, err)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()

	err := os.WriteFile(path, []byte(contents), 0o600)
	require.NoError(t, err)
}
