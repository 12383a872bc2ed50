package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// envKey is the environment variable used to override the default workspace root.
	envKey = "VENUELY_WORKSPACE"

	// defaultRootDir is used when the env variable is not defined.
	defaultRootDir = ".venuely"
)

// Predefined kinds.
const (
	KindCache = "cache"
)

var (
	mu sync.Mutex
	// cachedRoot holds the resolved, absolute path to the workspace root.
	cachedRoot string
)

// Root returns the absolute path to the workspace directory.
// The lookup order is:
//  1. $VENUELY_WORKSPACE environment variable, if set and non-empty
//  2. ./.venuely under the current working directory
//
// The result is cached for the lifetime of the process, unless the
// environment variable changes (e.g. in tests).
func Root() string {
	mu.Lock()
	defer mu.Unlock()
	if env := strings.TrimSpace(os.Getenv(envKey)); env != "" {
		cachedRoot = abs(env)
		return cachedRoot
	}
	if cachedRoot != "" {
		return cachedRoot
	}
	wd, err := os.Getwd()
	if err != nil {
		cachedRoot = abs(defaultRootDir)
		return cachedRoot
	}
	cachedRoot = abs(filepath.Join(wd, defaultRootDir))
	return cachedRoot
}

// Path returns a sub-path under the root for the given kind (e.g. "cache").
func Path(kind string) string {
	return filepath.Join(Root(), kind)
}

// ResolvePathTemplate expands supported macros in a path template.
// Supported macros: ${workspaceRoot}, ${home} and a leading ~.
func ResolvePathTemplate(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return v
	}
	if strings.Contains(v, "${workspaceRoot}") {
		v = strings.ReplaceAll(v, "${workspaceRoot}", filepath.ToSlash(Root()))
	}
	if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
		v = strings.ReplaceAll(v, "${home}", filepath.ToSlash(home))
	}
	return expandUserHome(v)
}

func expandUserHome(v string) string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return v
	}
	if strings.HasPrefix(v, "~/") || v == "~" {
		return filepath.Join(home, strings.TrimPrefix(v, "~"))
	}
	if strings.HasPrefix(v, "file://") {
		prefix := "file://localhost"
		rest := strings.TrimPrefix(v, prefix)
		if rest == v {
			prefix = "file://"
			rest = strings.TrimPrefix(v, prefix)
		}
		rest = strings.TrimLeft(rest, "/")
		if strings.HasPrefix(rest, "~") {
			joined := filepath.Join(home, strings.TrimPrefix(rest, "~"))
			return prefix + "/" + filepath.ToSlash(strings.TrimLeft(joined, "/"))
		}
	}
	return v
}

// abs converts p into an absolute, clean path. If an error occurs it returns p
// unchanged – the caller tolerates relative paths.
func abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if absPath, err := filepath.Abs(p); err == nil {
		return absPath
	}
	return filepath.Clean(p)
}
