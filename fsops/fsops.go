// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package fsops materializes a parsed forest onto a filesystem.
package fsops

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdhender/mktree"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ConflictError reports a target path that already exists when
// overwrite was not requested.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("naming conflict: %s already exists", e.Path)
}

// Materializer walks a forest depth first, in forest order, and
// creates the directories and files it describes. All filesystem
// access goes through afero so callers (and tests) can swap the
// backing filesystem.
type Materializer struct {
	fs       afero.Fs
	logger   *slog.Logger
	dirPerm  os.FileMode
	filePerm os.FileMode
}

type Option func(m *Materializer) error

// WithFS sets the backing filesystem. The default is the OS
// filesystem.
func WithFS(fs afero.Fs) Option {
	return func(m *Materializer) error {
		if fs == nil {
			return errors.New("nil filesystem")
		}
		m.fs = fs
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Materializer) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		m.logger = logger
		return nil
	}
}

func WithPerms(dirPerm, filePerm os.FileMode) Option {
	return func(m *Materializer) error {
		m.dirPerm, m.filePerm = dirPerm, filePerm
		return nil
	}
}

func New(options ...Option) (*Materializer, error) {
	m := &Materializer{
		fs:       afero.NewOsFs(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		dirPerm:  0o755,
		filePerm: 0o644,
	}
	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Check walks the forest without creating anything and fails with a
// *ConflictError on the first target path that already exists.
func (m *Materializer) Check(base string, forest []*mktree.Node) error {
	for _, n := range forest {
		target, err := m.join(base, n.Name)
		if err != nil {
			return err
		}
		exists, err := afero.Exists(m.fs, target)
		if err != nil {
			return errors.Wrapf(err, "stat %s", target)
		}
		if exists {
			return &ConflictError{Path: target}
		}
		if !n.IsFile {
			if err := m.Check(target, n.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply creates the directories and files the forest describes under
// base. Unless overwrite is set it runs Check first and creates
// nothing on failure. Existing directories are tolerated; existing
// files are truncated and rewritten, which makes Apply with overwrite
// idempotent.
func (m *Materializer) Apply(base string, forest []*mktree.Node, overwrite bool) error {
	if !overwrite {
		if err := m.Check(base, forest); err != nil {
			return err
		}
	}
	if err := m.fs.MkdirAll(base, m.dirPerm); err != nil {
		return errors.Wrapf(err, "mkdir %s", base)
	}
	return m.create(base, forest)
}

func (m *Materializer) create(base string, forest []*mktree.Node) error {
	for _, n := range forest {
		target, err := m.join(base, n.Name)
		if err != nil {
			return err
		}
		if n.IsFile {
			if err := afero.WriteFile(m.fs, target, []byte(n.Content), m.filePerm); err != nil {
				return errors.Wrapf(err, "write %s", target)
			}
			m.logger.Debug("created file", "path", target, "bytes", len(n.Content))
			continue
		}
		if err := m.fs.MkdirAll(target, m.dirPerm); err != nil {
			return errors.Wrapf(err, "mkdir %s", target)
		}
		m.logger.Debug("created directory", "path", target)
		if err := m.create(target, n.Children); err != nil {
			return err
		}
	}
	return nil
}

// Targets returns the paths Apply would create, in creation order.
// Directory entries carry a trailing separator.
func (m *Materializer) Targets(base string, forest []*mktree.Node) ([]string, error) {
	var targets []string
	for _, n := range forest {
		target, err := m.join(base, n.Name)
		if err != nil {
			return nil, err
		}
		if n.IsFile {
			targets = append(targets, target)
			continue
		}
		targets = append(targets, target+string(os.PathSeparator))
		children, err := m.Targets(target, n.Children)
		if err != nil {
			return nil, err
		}
		targets = append(targets, children...)
	}
	return targets, nil
}

// join appends a node name to base and rejects anything that would
// resolve outside base. The grammar places no restriction on the
// characters of a name, so separators and parent references must be
// caught here.
func (m *Materializer) join(base, name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", errors.Errorf("unsafe name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", errors.Errorf("name %q must not contain path separators", name)
	}
	p := filepath.Join(base, name)
	rel, err := filepath.Rel(filepath.Clean(base), p)
	if err != nil {
		return "", errors.Wrapf(err, "join %s %s", base, name)
	}
	if rel == ".." || strings.HasPrefix(filepath.ToSlash(rel), "../") {
		return "", errors.Errorf("path escapes %s: %s", base, p)
	}
	return p, nil
}
