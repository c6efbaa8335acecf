// Package writer materialises rendered artifacts below a project directory.
package writer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/beltram/zr/pkg/errors"
	"github.com/beltram/zr/pkg/logging"
	"github.com/beltram/zr/pkg/render"
)

// FileMode is the mode of written files
const FileMode fs.FileMode = 0644

// DirMode is the mode of created directories
const DirMode fs.FileMode = 0755

// Writer writes artifacts below Root. Existing files are never replaced
// unless Overwrite is set.
type Writer struct {
	Root      string
	Overwrite bool

	logger     zerolog.Logger
	filesystem synthfs.FileSystem
	seq        int
}

// New returns a writer rooted at root
func New(root string) *Writer {
	return &Writer{
		Root:       root,
		logger:     logging.GetLogger("writer"),
		filesystem: filesystem.NewOSFileSystem(root),
	}
}

// Write creates the file of a, its parent directories included, and
// renames it when its base name carries the hidden escape. It returns the
// final path of the file.
func (w *Writer) Write(ctx context.Context, a render.Artifact) (string, error) {
	relPath, err := w.relative(a.Name)
	if err != nil {
		return "", err
	}
	target := filepath.Join(w.Root, relPath)
	final := target
	if base := filepath.Base(target); render.IsEscaped(base) {
		final = filepath.Join(filepath.Dir(target), render.Unescape(base))
	}

	if err := os.MkdirAll(filepath.Dir(target), DirMode); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create parents of %s", relPath).
			WithDetail("artifact", a.Name)
	}

	for _, path := range uniquePaths(target, final) {
		if err := w.clear(path); err != nil {
			return "", err.WithDetail("artifact", a.Name)
		}
	}

	w.seq++
	createOp := operations.NewCreateFileOperation(core.OperationID(fmt.Sprintf("write-file-%d-%s", w.seq, relPath)), filepath.ToSlash(relPath))
	createOp.SetItem(&fileItem{
		path:    filepath.ToSlash(relPath),
		content: a.Content,
		mode:    FileMode,
	})

	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(createOp)); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to plan %s", relPath)
	}

	result := synthfs.NewExecutor().Run(ctx, pipeline, w.filesystem)
	if result.GetError() != nil {
		return "", errors.Wrapf(result.GetError(), errors.ErrFileWrite, "failed to write %s", relPath).
			WithDetail("artifact", a.Name)
	}

	w.logger.Debug().Str("artifact", relPath).Int("bytes", len(a.Content)).Msg("Wrote file")

	if final == target {
		return target, nil
	}
	if err := os.Rename(target, final); err != nil {
		return target, errors.Wrapf(err, errors.ErrFileWrite, "failed to rename %s", relPath)
	}
	return final, nil
}

// clear makes room for a file at path: nothing to do when it is free, an
// error unless Overwrite is set when it is taken.
func (w *Writer) clear(path string) *errors.ZrError {
	if _, err := os.Lstat(path); err != nil {
		return nil
	}
	rel, _ := filepath.Rel(w.Root, path)
	if !w.Overwrite {
		return errors.Newf(errors.ErrFileWrite, "%s already exists", rel)
	}
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", rel)
	}
	return nil
}

func uniquePaths(a, b string) []string {
	if a == b {
		return []string{a}
	}
	return []string{a, b}
}

// WriteAll writes every artifact in order. Failures are logged and
// returned, they do not stop the remaining writes.
func (w *Writer) WriteAll(ctx context.Context, artifacts []render.Artifact) (written []string, failed []error) {
	for _, a := range artifacts {
		path, err := w.Write(ctx, a)
		if err != nil {
			w.logger.Warn().Err(err).Str("artifact", a.Name).Msg("Failed writing file")
			failed = append(failed, err)
			continue
		}
		written = append(written, path)
	}
	return written, failed
}

// UnescapeDirs renames every directory below Root whose name carries the
// hidden escape, deepest first so that parents are renamed last. When the
// dot directory already exists the escaped one is merged into it; files
// present in both are left in the escaped directory unless Overwrite is
// set, and reported in the returned error.
func (w *Writer) UnescapeDirs() error {
	var dirs []string
	err := filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != w.Root && render.IsEscaped(d.Name()) {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to walk %s", w.Root)
	}

	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(filepath.Separator)) > strings.Count(dirs[j], string(filepath.Separator))
	})

	var conflicts []string
	for _, dir := range dirs {
		target := filepath.Join(filepath.Dir(dir), render.Unescape(filepath.Base(dir)))
		if _, err := os.Lstat(target); err == nil {
			c, err := w.mergeDir(dir, target)
			if err != nil {
				return err
			}
			conflicts = append(conflicts, c...)
			continue
		}
		if err := os.Rename(dir, target); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to rename %s", dir)
		}
		w.logger.Debug().Str("from", dir).Str("to", target).Msg("Renamed hidden directory")
	}

	if len(conflicts) > 0 {
		return errors.Newf(errors.ErrFileWrite, "already existing, not overwritten: %s", strings.Join(conflicts, ", ")).
			WithDetail("conflicts", conflicts)
	}
	return nil
}

// relative validates an artifact name and returns it as a path below Root
func (w *Writer) relative(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimLeft(name, "/")))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "artifact path %q leaves the project directory", name).
			WithDetail("artifact", name)
	}
	return clean, nil
}

// mergeDir moves the entries of from into into, recursing into
// directories present in both. It returns the paths, relative to Root,
// that were left in from because into already had them.
func (w *Writer) mergeDir(from, into string) ([]string, error) {
	entries, err := os.ReadDir(from)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", from)
	}

	var conflicts []string
	for _, e := range entries {
		src := filepath.Join(from, e.Name())
		dst := filepath.Join(into, e.Name())

		if info, err := os.Lstat(dst); err == nil && info.IsDir() && e.IsDir() {
			c, err := w.mergeDir(src, dst)
			if err != nil {
				return nil, err
			}
			conflicts = append(conflicts, c...)
			continue
		}
		if zrErr := w.clear(dst); zrErr != nil {
			if zrErr.Wrapped != nil {
				return nil, zrErr
			}
			rel, _ := filepath.Rel(w.Root, dst)
			conflicts = append(conflicts, rel)
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to move %s", e.Name())
		}
	}

	if len(conflicts) > 0 {
		return conflicts, nil
	}
	if err := os.Remove(from); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", from)
	}
	return nil, nil
}

// Remove deletes dir and everything below it
func Remove(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to delete %s", dir)
	}
	return nil
}
