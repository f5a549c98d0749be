package services

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

// SafeJoin joins target below root/sub, returning "" when target would
// escape it.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if !filepath.IsLocal(cleanTarget) {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// CreateDraft writes a new draft named after the slugified title and
// returns its path relative to source. An existing draft is never
// overwritten; the error then satisfies os.IsExist.
func CreateDraft(source, dir, ext, title, format string) (string, error) {
	name := slug.Make(title)
	if name == "" {
		return "", errors.Errorf("title %q has no usable characters", title)
	}
	if format == "" {
		format = "yaml"
	}
	if ext == "" {
		ext = ".md"
	}

	content, err := NewDraftContent(title, format, time.Now())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Join(source, dir), 0755); err != nil {
		return "", errors.Wrap(err, "create drafts directory")
	}

	rel := filepath.Join(dir, name+ext)
	f, err := os.OpenFile(filepath.Join(source, rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", err
		}
		return "", errors.Wrap(err, "create draft")
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return "", errors.Wrap(err, "write draft")
	}
	return filepath.ToSlash(rel), nil
}

// ReadDraft loads one draft by file name from the drafts directory. Names
// the registrar would not pick up (hidden, other extensions, nested) read
// as not found.
func ReadDraft(source, dir, ext, name string) ([]byte, error) {
	if ext == "" {
		ext = DefaultDraftsExtension
	}
	if filepath.Base(name) != name || strings.HasPrefix(name, ".") || filepath.Ext(name) != ext {
		return nil, os.ErrNotExist
	}
	fullPath := SafeJoin(source, dir, name)
	if fullPath == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(fullPath)
}
