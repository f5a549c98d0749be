package services

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DirtyFiles returns the files under dir that are not committed: modified,
// staged or untracked. Paths are relative to dir in slash form.
func DirtyFiles(dir string) (map[string]bool, error) {
	top, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, errors.Wrap(err, "git rev-parse")
	}
	root := strings.TrimSpace(string(top))

	out, err := gitOutput(dir, "-c", "core.quotepath=off", "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return nil, errors.Wrap(err, "git status")
	}

	base, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", dir)
	}
	base, err = filepath.Abs(base)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", dir)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	dirty := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		// Renames are reported as "old -> new".
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		path = strings.Trim(strings.TrimSpace(path), "\"")

		rel, err := filepath.Rel(base, filepath.Join(root, filepath.FromSlash(path)))
		if err != nil || !filepath.IsLocal(rel) {
			continue
		}
		dirty[filepath.ToSlash(rel)] = true
	}
	return dirty, nil
}

func gitOutput(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Output()
}
