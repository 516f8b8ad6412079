package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var ErrMissingSource = errors.New("package file missing")

// FileMap is the ordered set of archive entry names supplied by a package
// directory. Names use forward slashes, matching zip entry naming.
type FileMap struct {
	fs    afero.Fs
	dir   string
	names []string
	index map[string]struct{}
}

// BuildFileMap walks pkgDir and records every regular file beneath it.
func BuildFileMap(fsys afero.Fs, pkgDir string) (*FileMap, error) {
	if info, err := fsys.Stat(pkgDir); err != nil {
		return nil, fmt.Errorf("package directory: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("package directory: %s is not a directory", pkgDir)
	}

	m := &FileMap{
		fs:    fsys,
		dir:   pkgDir,
		index: map[string]struct{}{},
	}
	err := afero.Walk(fsys, pkgDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			// follow links to files; links to directories are not descended
			if info, err = fsys.Stat(path); err != nil {
				return err
			}
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(pkgDir, path)
		if err != nil {
			return err
		}
		m.add(filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading package directory: %w", err)
	}
	return m, nil
}

func (m *FileMap) add(name string) {
	if _, ok := m.index[name]; ok {
		return
	}
	m.index[name] = struct{}{}
	m.names = append(m.names, name)
}

func (m *FileMap) Dir() string {
	return m.dir
}

func (m *FileMap) Names() []string {
	return append([]string(nil), m.names...)
}

func (m *FileMap) Len() int {
	return len(m.names)
}

func (m *FileMap) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

func (m *FileMap) path(name string) string {
	return filepath.Join(m.dir, filepath.FromSlash(name))
}

// Open opens the package file that replaces the named entry.
func (m *FileMap) Open(name string) (afero.File, error) {
	f, err := m.fs.Open(m.path(name))
	if err != nil {
		return nil, sourceError(name, err)
	}
	return f, nil
}

func (m *FileMap) Stat(name string) (fs.FileInfo, error) {
	info, err := m.fs.Stat(m.path(name))
	if err != nil {
		return nil, sourceError(name, err)
	}
	return info, nil
}

func sourceError(name string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingSource, name)
	}
	return fmt.Errorf("opening package file %s: %w", name, err)
}
