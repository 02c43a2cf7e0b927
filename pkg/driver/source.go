package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GitSourcePrefix marks a target that names a file inside a git repository.
const GitSourcePrefix = "git+"

// Source is program text plus a display name for diagnostics.
type Source struct {
	Name string
	Text string
}

// ReadSource loads target, which is either a local file path or a git source
// of the form git+<url>@<rev>#<path>. Git checkouts are cached under cacheDir.
func ReadSource(target, cacheDir string) (*Source, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, fmt.Errorf("source: empty target")
	}
	if strings.HasPrefix(target, GitSourcePrefix) {
		spec, err := ParseGitSource(target)
		if err != nil {
			return nil, err
		}
		return readGitSource(spec, cacheDir)
	}
	return readFileSource(target)
}

func readFileSource(path string) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return &Source{Name: path, Text: string(data)}, nil
}
