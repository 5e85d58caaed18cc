package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
)

// writeZip creates a new archive at archivePath holding entries read from
// dir, deflated at the highest level. It fills in each entry's size and
// returns the total uncompressed size.
func writeZip(archivePath string, dir string, entries []Entry) (total int64, err error) {
	f, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, errors.Wrap(err, "error creating archive")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "error closing archive")
		}
	}()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "error finalizing archive")
		}
	}()

	for i := range entries {
		n, err := addFile(zw, filepath.Join(dir, filepath.FromSlash(entries[i].Path)), entries[i].Name)
		if err != nil {
			return 0, err
		}
		entries[i].Size = n
		total += n
	}

	return total, nil
}

func addFile(zw *zip.Writer, src string, name string) (int64, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, "error reading %s", name)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "error reading %s", name)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return 0, errors.Wrapf(err, "error creating header for %s", name)
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return 0, errors.Wrapf(err, "error creating entry %s", name)
	}

	n, err := io.Copy(w, f)
	if err != nil {
		return 0, errors.Wrapf(err, "error writing %s", name)
	}

	return n, nil
}
