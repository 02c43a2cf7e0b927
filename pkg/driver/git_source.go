package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitSource names a file at a revision of a git repository.
type GitSource struct {
	URL  string
	Rev  string
	Path string
}

func (g GitSource) String() string {
	return fmt.Sprintf("%s%s@%s#%s", GitSourcePrefix, g.URL, g.Rev, g.Path)
}

// ParseGitSource splits git+<url>@<rev>#<path>. The last '@' before '#'
// separates the revision so URLs such as git@host:repo stay intact.
func ParseGitSource(target string) (*GitSource, error) {
	if !strings.HasPrefix(target, GitSourcePrefix) {
		return nil, fmt.Errorf("git source %q: missing %q prefix", target, GitSourcePrefix)
	}
	rest := strings.TrimPrefix(target, GitSourcePrefix)
	hash := strings.Index(rest, "#")
	if hash < 0 {
		return nil, fmt.Errorf("git source %q: missing #<path>", target)
	}
	locator, path := rest[:hash], strings.TrimSpace(rest[hash+1:])
	at := strings.LastIndex(locator, "@")
	if at < 0 {
		return nil, fmt.Errorf("git source %q: missing @<rev>", target)
	}
	url, rev := strings.TrimSpace(locator[:at]), strings.TrimSpace(locator[at+1:])

	var issues []string
	if url == "" {
		issues = append(issues, "url must not be empty")
	}
	if rev == "" {
		issues = append(issues, "rev must not be empty")
	}
	if path == "" {
		issues = append(issues, "path must not be empty")
	} else if !filepath.IsLocal(filepath.FromSlash(path)) {
		issues = append(issues, fmt.Sprintf("path %q must stay inside the repository", path))
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("git source %q: %s", target, strings.Join(issues, "; "))
	}
	return &GitSource{URL: url, Rev: rev, Path: path}, nil
}

func readGitSource(spec *GitSource, cacheDir string) (*Source, error) {
	if cacheDir == "" {
		cacheDir = defaultCacheDir()
	}
	checkout, _, err := FetchGitSource(spec, cacheDir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(checkout, filepath.FromSlash(spec.Path)))
	if err != nil {
		return nil, fmt.Errorf("git source %s: read %s: %w", spec, spec.Path, err)
	}
	return &Source{Name: spec.String(), Text: string(data)}, nil
}

// FetchGitSource makes sure a checkout of spec.Rev exists under cacheDir and
// returns its directory and commit hash. A checkout is keyed by commit, so a
// pinned hash is served from the cache without touching the network.
func FetchGitSource(spec *GitSource, cacheDir string) (string, string, error) {
	baseDir := filepath.Join(cacheDir, "git", sanitizePathSegment(spec.URL))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", "", err
	}

	if plumbing.IsHash(spec.Rev) {
		existing := filepath.Join(baseDir, spec.Rev)
		if _, err := os.Stat(existing); err == nil {
			return existing, spec.Rev, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return "", "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{URL: spec.URL})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("git clone %s: %w", spec.URL, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(spec.Rev))
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("resolve revision %s: %w", spec.Rev, err)
	}

	targetDir := filepath.Join(baseDir, hash.String())
	if _, err := os.Stat(targetDir); err == nil {
		_ = os.RemoveAll(tmpDir)
		return targetDir, hash.String(), nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("git checkout %s: %w", spec.Rev, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", err
	}
	return targetDir, hash.String(), nil
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "head"
	}
	return b.String()
}
