package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MODEL_HUB_TEST_VALUE=from-file\n"), 0644))
	t.Setenv("ENV_PATH", "")
	t.Setenv("MODEL_HUB_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("MODEL_HUB_TEST_VALUE"))

	err := LoadDotEnv("local", path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv("MODEL_HUB_TEST_VALUE"))
}

func TestLoadDotEnv_EnvPathOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("MODEL_HUB_TEST_OVERRIDE=yes\n"), 0644))
	t.Setenv("ENV_PATH", path)
	t.Setenv("MODEL_HUB_TEST_OVERRIDE", "")
	require.NoError(t, os.Unsetenv("MODEL_HUB_TEST_OVERRIDE"))

	err := LoadDotEnv("local", filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "yes", os.Getenv("MODEL_HUB_TEST_OVERRIDE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.Error(t, LoadDotEnv("", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}

func TestParseEnv_KeepsUnsetFields(t *testing.T) {
	type target struct {
		Name  string `env:"MODEL_HUB_TEST_NAME"`
		Count int    `env:"MODEL_HUB_TEST_COUNT"`
	}
	t.Setenv("MODEL_HUB_TEST_COUNT", "7")

	cfg := target{Name: "default"}
	err := ParseEnv(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	type target struct {
		Count int `env:"MODEL_HUB_TEST_BAD_COUNT"`
	}
	t.Setenv("MODEL_HUB_TEST_BAD_COUNT", "many")

	err := ParseEnv(&target{})

	assert.ErrorContains(t, err, "parse env")
}
