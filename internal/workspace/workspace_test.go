package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoot_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envKey, dir)
	assert.EqualValues(t, dir, Root())
	assert.EqualValues(t, filepath.Join(dir, KindCache), Path(KindCache))
}

func TestResolvePathTemplate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envKey, dir)
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "blank", input: "  ", expected: ""},
		{name: "workspace macro", input: "file://${workspaceRoot}/cache", expected: "file://" + filepath.ToSlash(dir) + "/cache"},
		{name: "home macro", input: "${home}/cache", expected: filepath.ToSlash(home) + "/cache"},
		{name: "tilde path", input: "~/cache", expected: filepath.Join(home, "cache")},
		{name: "tilde url", input: "file://~/cache", expected: "file:///" + filepath.ToSlash(filepath.Join(home, "cache"))[1:]},
		{name: "untouched url", input: "mem://localhost/cache", expected: "mem://localhost/cache"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.expected, ResolvePathTemplate(tc.input))
		})
	}
}
