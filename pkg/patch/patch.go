package patch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Action string

const (
	ActionUpdate Action = "update"
	ActionAdd    Action = "add"
)

type Event struct {
	Action Action
	Name   string
}

type Options struct {
	// OnEvent is called once for every updated or added entry, before its
	// contents are written.
	OnEvent func(Event)
}

func (o Options) emit(ev Event) {
	if o.OnEvent != nil {
		o.OnEvent(ev)
	}
}

// Patch rewrites the zip archive at path so that every entry named in files
// holds the contents of the matching package file, adding entries that do
// not exist yet. All other entries are copied without recompression.
//
// The new archive is written to a temporary directory next to the original
// and renamed over it only once it is complete; on error the original is left
// untouched.
func Patch(fsys afero.Fs, archive string, files *FileMap, opts Options) error {
	tempDir, err := afero.TempDir(fsys, filepath.Dir(archive), ".zazus-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer func() {
		if err := fsys.RemoveAll(tempDir); err != nil {
			log.Warnf("failed to remove %s: %v", tempDir, err)
		}
	}()

	tempName := filepath.Join(tempDir, "tmp.zip")
	if err := rewrite(fsys, archive, tempName, files, opts); err != nil {
		return err
	}

	info, err := fsys.Stat(archive)
	if err != nil {
		return fmt.Errorf("replacing archive: %w", err)
	}
	if err := fsys.Chmod(tempName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("replacing archive: %w", err)
	}

	if err := fsys.Rename(tempName, archive); err != nil {
		return fmt.Errorf("replacing archive: %w", err)
	}
	return nil
}

func rewrite(fsys afero.Fs, src, dst string, files *FileMap, opts Options) error {
	zr, closer, err := openArchive(fsys, src)
	if err != nil {
		return err
	}
	defer closer.Close()

	out, err := fsys.Create(dst)
	if err != nil {
		return fmt.Errorf("creating temp archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	replaced := make(map[string]bool, files.Len())
	for _, f := range zr.File {
		if !files.Has(f.Name) {
			if err := zw.Copy(f); err != nil {
				return fmt.Errorf("copying %s: %w", f.Name, err)
			}
			continue
		}
		opts.emit(Event{Action: ActionUpdate, Name: f.Name})
		if err := writeEntry(zw, replacementHeader(&f.FileHeader), files); err != nil {
			return err
		}
		replaced[f.Name] = true
	}

	for _, name := range files.Names() {
		if replaced[name] {
			continue
		}
		opts.emit(Event{Action: ActionAdd, Name: name})
		hdr, err := newEntryHeader(files, name)
		if err != nil {
			return err
		}
		if err := writeEntry(zw, hdr, files); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing temp archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing temp archive: %w", err)
	}
	return nil
}

// Plan reports what Patch would do to the archive, in the same order, without
// writing anything.
func Plan(fsys afero.Fs, archive string, files *FileMap) ([]Event, error) {
	zr, closer, err := openArchive(fsys, archive)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var events []Event
	seen := map[string]bool{}
	for _, f := range zr.File {
		if files.Has(f.Name) {
			events = append(events, Event{Action: ActionUpdate, Name: f.Name})
			seen[f.Name] = true
		}
	}
	for _, name := range files.Names() {
		if !seen[name] {
			events = append(events, Event{Action: ActionAdd, Name: name})
		}
	}
	return events, nil
}

func openArchive(fsys afero.Fs, path string) (*zip.Reader, io.Closer, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("reading archive %s: %w", path, err)
	}
	return zr, f, nil
}

// replacementHeader keeps the original entry's name, method and metadata.
// Sizes and checksum are recomputed by the writer.
func replacementHeader(orig *zip.FileHeader) *zip.FileHeader {
	return &zip.FileHeader{
		Name:           orig.Name,
		Comment:        orig.Comment,
		NonUTF8:        orig.NonUTF8,
		CreatorVersion: orig.CreatorVersion,
		Method:         orig.Method,
		Modified:       orig.Modified,
		ExternalAttrs:  orig.ExternalAttrs,
	}
}

func newEntryHeader(files *FileMap, name string) (*zip.FileHeader, error) {
	info, err := files.Stat(name)
	if err != nil {
		return nil, err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return nil, fmt.Errorf("building header for %s: %w", name, err)
	}
	hdr.Name = name
	hdr.Method = zip.Deflate
	return hdr, nil
}

func writeEntry(zw *zip.Writer, hdr *zip.FileHeader, files *FileMap) error {
	src, err := files.Open(hdr.Name)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("writing %s: %w", hdr.Name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("writing %s: %w", hdr.Name, err)
	}
	return nil
}
