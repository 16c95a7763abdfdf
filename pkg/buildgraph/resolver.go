package buildgraph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ClasspathResolver resolves a list of dependency coordinates to a
// path-separator-joined classpath string
type ClasspathResolver interface {
	Resolve(coordinates []string) (string, error)
}

// UnresolvedConfigurationError indicates that a configuration's classpath
// could not be resolved. It aborts project evaluation; the build cannot
// proceed without the classpath.
type UnresolvedConfigurationError struct {
	Configuration string
	Err           error
}

// Error returns a message naming the unresolved configuration
func (e *UnresolvedConfigurationError) Error() string {
	return fmt.Sprintf("failed to resolve classpath for configuration %s: %v", e.Configuration, e.Err)
}

// Unwrap returns the underlying resolution error
func (e *UnresolvedConfigurationError) Unwrap() error {
	return e.Err
}

// CacheResolver resolves dependency coordinates against the local gradle
// artifact cache layout. It maps each "group:name:version" coordinate to the
// jar path the cache would hold for it; it does not download artifacts or
// resolve transitive dependencies.
type CacheResolver struct {
	cacheDir string
}

// NewCacheResolver creates a resolver rooted at the given cache directory.
// An empty cacheDir falls back to the default gradle cache under the user's
// home directory.
func NewCacheResolver(cacheDir string) *CacheResolver {
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".gradle", "caches", "modules-2", "files-2.1")
	}

	return &CacheResolver{
		cacheDir: cacheDir,
	}
}

// Resolve maps each coordinate to its cache jar path and joins the paths
// with the platform path separator
func (r *CacheResolver) Resolve(coordinates []string) (string, error) {
	var paths []string
	for _, coordinate := range coordinates {
		parts := strings.Split(coordinate, ":")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return "", fmt.Errorf("invalid dependency coordinate %q: expected group:name:version", coordinate)
		}

		group, name, version := parts[0], parts[1], parts[2]
		paths = append(paths, filepath.Join(r.cacheDir, group, name, version, name+"-"+version+".jar"))
	}

	return strings.Join(paths, string(os.PathListSeparator)), nil
}
