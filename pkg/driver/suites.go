package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// SuiteSource names a git repository of session files and the revision to use. At most
// one of Rev, Tag and Branch should be set; none means the remote HEAD.
type SuiteSource struct {
	URL    string
	Rev    string
	Tag    string
	Branch string
}

// SuiteCheckout is a checked-out suite on disk.
type SuiteCheckout struct {
	Dir     string
	Version string
	Commit  string
}

// FetchSuite clones the suite repository into cacheDir and checks out the requested
// revision under <cacheDir>/<url>/<version>. Existing checkouts are reused.
func FetchSuite(cacheDir string, src SuiteSource) (*SuiteCheckout, error) {
	url := strings.TrimSpace(src.URL)
	if url == "" {
		return nil, fmt.Errorf("suite: missing repository url")
	}
	if strings.TrimSpace(cacheDir) == "" {
		return nil, fmt.Errorf("suite: missing cache directory")
	}
	baseDir := filepath.Join(cacheDir, sanitizePathSegment(url))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}

	revision, descriptor, err := gitRevisionFromSource(src)
	if err != nil {
		return nil, err
	}

	explicitRev := strings.TrimSpace(src.Rev)
	if explicitRev != "" {
		existing := filepath.Join(baseDir, sanitizePathSegment(explicitRev))
		if _, err := os.Stat(existing); err == nil {
			return &SuiteCheckout{Dir: existing, Version: explicitRev, Commit: explicitRev}, nil
		}
		if checkout := findPinnedCheckout(baseDir, explicitRev); checkout != nil {
			return checkout, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:   url,
		Depth: 0,
		Tags:  git.AllTags,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("suite: git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("suite: resolve revision %s: %w", revision, err)
	}

	version := gitPinnedVersion(descriptor, hash.String())
	targetDir := filepath.Join(baseDir, sanitizePathSegment(version))
	if _, err := os.Stat(targetDir); err == nil {
		_ = os.RemoveAll(tmpDir)
		return &SuiteCheckout{Dir: targetDir, Version: version, Commit: hash.String()}, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("suite: %w", err)
	}
	if err := worktree.Checkout(&git.CheckoutOptions{
		Hash:  *hash,
		Force: true,
	}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("suite: git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("suite: %w", err)
	}
	return &SuiteCheckout{Dir: targetDir, Version: version, Commit: hash.String()}, nil
}

// findPinnedCheckout locates an earlier checkout of an abbreviated commit hash, stored under
// the pinned "<rev>@<commit>" name.
func findPinnedCheckout(baseDir, rev string) *SuiteCheckout {
	rev = strings.ToLower(rev)
	if !isHexString(rev) {
		return nil
	}
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil
	}
	prefix := sanitizePathSegment(rev) + "_"
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		commit := strings.TrimPrefix(entry.Name(), prefix)
		if len(commit) != 40 || !isHexString(commit) || !strings.HasPrefix(commit, rev) {
			continue
		}
		return &SuiteCheckout{
			Dir:     filepath.Join(baseDir, entry.Name()),
			Version: gitPinnedVersion(rev, commit),
			Commit:  commit,
		}
	}
	return nil
}

func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func gitPinnedVersion(descriptor, commit string) string {
	commit = strings.TrimSpace(commit)
	descriptor = strings.TrimSpace(descriptor)
	if commit == "" {
		return descriptor
	}
	if descriptor == "" || descriptor == commit {
		return commit
	}
	return fmt.Sprintf("%s@%s", descriptor, commit)
}

func gitRevisionFromSource(src SuiteSource) (plumbing.Revision, string, error) {
	set := 0
	for _, v := range []string{src.Rev, src.Tag, src.Branch} {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set > 1 {
		return "", "", fmt.Errorf("suite: specify at most one of rev, tag, or branch")
	}
	if rev := strings.TrimSpace(src.Rev); rev != "" {
		return plumbing.Revision(rev), rev, nil
	}
	if tag := strings.TrimSpace(src.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag, nil
	}
	if branch := strings.TrimSpace(src.Branch); branch != "" {
		return plumbing.Revision("refs/remotes/origin/" + branch), branch, nil
	}
	return plumbing.Revision("HEAD"), "", nil
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	result := b.String()
	if result == "" {
		return "head"
	}
	return result
}
