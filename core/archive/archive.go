package archive

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/qumopa/qumopa/core/errs"
	"github.com/qumopa/qumopa/core/filter"
)

const Extension = ".zip"

type Options struct {
	// Rooted stores every entry under a folder named after the archive.
	Rooted bool
}

// Packager writes a resolved file set from Dir into <basename of Dir>.zip.
type Packager struct {
	Dir string
	Options
}

type Entry struct {
	// Path is the source file, relative to the packager directory.
	Path string `json:"path"`
	// Name is the entry name inside the archive.
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type Result struct {
	Name           string  `json:"name"`
	Path           string  `json:"path"`
	Entries        []Entry `json:"entries"`
	Size           int64   `json:"size"`
	CompressedSize int64   `json:"compressedSize"`
}

func NewPackager(dir string, opts Options) *Packager {
	return &Packager{Dir: dir, Options: opts}
}

// ArchiveName derives the archive's base name from a directory.
func ArchiveName(dir string) (string, error) {
	name := filepath.Base(dir)
	if name == "" || name == "." || strings.ContainsAny(name, `/\`) {
		return "", errs.New(errs.KindInvalidName, "Invalid mod name")
	}
	return name, nil
}

// Plan computes the archive name and its entries without touching the
// archive. The archive's own file is never an entry.
func (p *Packager) Plan(files filter.FileSet) (string, []Entry, error) {
	if files.Len() == 0 {
		return "", nil, errs.New(errs.KindEmptyFileSet, "No files to zip")
	}

	dir, err := filepath.Abs(p.Dir)
	if err != nil {
		return "", nil, errs.Wrap(errs.KindInvalidName, err, "Invalid mod name")
	}

	name, err := ArchiveName(dir)
	if err != nil {
		return "", nil, err
	}

	files = files.Clone()
	files.Remove(name + Extension)

	if files.Len() == 0 {
		return "", nil, errs.New(errs.KindEmptyFileSet, "No files to zip")
	}

	entries := make([]Entry, 0, files.Len())
	for _, f := range files.Sorted() {
		entry := Entry{Path: f, Name: f}
		if p.Rooted {
			entry.Name = path.Join(name, f)
		}
		entries = append(entries, entry)
	}

	return name, entries, nil
}

// Package writes files into the archive. The archive is written to a
// temporary file next to it and renamed into place once complete.
func (p *Packager) Package(files filter.FileSet) (*Result, error) {
	name, entries, err := p.Plan(files)
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(p.Dir)
	if err != nil {
		return nil, errs.Wrap(errs.KindArchiveWrite, err, "Failed to write zip archive")
	}
	archivePath := filepath.Join(dir, name+Extension)

	lock, err := lockArchive(archivePath)
	if err != nil {
		return nil, errs.Wrap(errs.KindArchiveWrite, err, "Failed to write zip archive")
	}
	defer lock.release()

	tmpPath := filepath.Join(dir, "."+name+Extension+"."+uuid.NewString()+".tmp")
	log.Debugf("Writing %d files to %s", len(entries), tmpPath)

	size, err := writeZip(tmpPath, dir, entries)
	if err != nil {
		_ = os.Remove(tmpPath)
		return nil, errs.Wrap(errs.KindArchiveWrite, err, "Failed to write zip archive")
	}

	if err := os.Rename(tmpPath, archivePath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, errs.Wrap(errs.KindArchiveWrite, err, "Failed to write zip archive")
	}

	result := &Result{
		Name:    name,
		Path:    archivePath,
		Entries: entries,
		Size:    size,
	}

	if info, err := os.Stat(archivePath); err == nil {
		result.CompressedSize = info.Size()
	}

	return result, nil
}
