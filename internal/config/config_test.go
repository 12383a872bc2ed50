package config

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestLoad_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VENUELY_WORKSPACE", dir)
	ctx := context.Background()

	cfg, err := Load(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, "http://localhost:8080", cfg.Endpoint)
	assert.EqualValues(t, 10*time.Second, cfg.Timeout)
	assert.EqualValues(t, "venues", cfg.Cache.Key)
	assert.EqualValues(t, "file://"+filepath.ToSlash(dir)+"/cache", cfg.Cache.URL)

	ok, err := afs.New().Exists(ctx, filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoad_ExistingWithEnvOverrides(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/venuely/config.yaml"
	content := `endpoint: http://venues.example.com
timeout: 3s
cache:
  url: mem://localhost/venuely/cache
  key: halls
`
	require.NoError(t, afs.New().Upload(ctx, URL, 0o644, strings.NewReader(content)))

	testCases := []struct {
		name     string
		env      map[string]string
		expected Config
	}{
		{
			name: "file values",
			expected: Config{
				Endpoint: "http://venues.example.com",
				Timeout:  3 * time.Second,
				Cache:    Cache{URL: "mem://localhost/venuely/cache", Key: "halls"},
			},
		},
		{
			name: "env overrides",
			env: map[string]string{
				"VENUELY_ENDPOINT":  "http://127.0.0.1:9000",
				"VENUELY_TIMEOUT":   "250ms",
				"VENUELY_CACHE_URL": "mem://localhost/other",
				"VENUELY_CACHE_KEY": "venues",
			},
			expected: Config{
				Endpoint: "http://127.0.0.1:9000",
				Timeout:  250 * time.Millisecond,
				Cache:    Cache{URL: "mem://localhost/other", Key: "venues"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(ctx, URL)
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, *cfg)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/venuely/broken.yaml"
	require.NoError(t, afs.New().Upload(ctx, URL, 0o644, strings.NewReader("endpoint: [")))
	_, err := Load(ctx, URL)
	assert.Error(t, err)
}
