package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconcloud/cloud"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ICONCLOUD_RADIUS", "ICONCLOUD_ICON_SIZE", "ICONCLOUD_FPS", "ICONCLOUD_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 200.0, cfg.Cloud.Radius)
	assert.Equal(t, 40.0, cfg.Cloud.IconSize)
	assert.Equal(t, 60, cfg.Cloud.FPS)
	assert.Len(t, cfg.Labels, 24)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("missing file should yield defaults (-want +got):\n%s", diff)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "iconcloud.yaml")

	cfg := DefaultConfig()
	cfg.Cloud.Radius = 12
	cfg.Labels = []cloud.Label{{Name: "Go", Color: "#00ADD8"}, {Name: "Zig", Category: cloud.CategoryTools}}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "iconcloud.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cloud:\n  fps: 30\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Cloud.FPS)
	assert.Equal(t, 200.0, cfg.Cloud.Radius)
	assert.Equal(t, cloud.DefaultParams(), cfg.Cloud.Motion)
	assert.Len(t, cfg.Labels, 24)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":    "cloud: [",
		"radius":    "cloud:\n  radius: -5\n",
		"fps":       "cloud:\n  fps: 0\n",
		"smoothing": "cloud:\n  motion:\n    idle_smoothing: 3\n",
		"labels":    "labels:\n  - name: Go\n  - name: go\n",
		"level":     "logging:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ICONCLOUD_RADIUS", "90")
	t.Setenv("ICONCLOUD_ICON_SIZE", "12.5")
	t.Setenv("ICONCLOUD_FPS", "24")
	t.Setenv("ICONCLOUD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Cloud.Radius)
	assert.Equal(t, 12.5, cfg.Cloud.IconSize)
	assert.Equal(t, 24, cfg.Cloud.FPS)
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv("ICONCLOUD_FPS", "fast")
	_, err = Load("")
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.Options()
	assert.Equal(t, cloud.DefaultOptions(), opts)
}
