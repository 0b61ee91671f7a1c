package rotate

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/spf13/afero"
)

// Codec is a compression algorithm used for archives
type Codec struct {
	// Ext is appended to the archive name, without the dot
	Ext       string
	NewWriter func(io.Writer) io.WriteCloser
}

var (
	Gzip = Codec{Ext: "gz", NewWriter: func(w io.Writer) io.WriteCloser {
		return gzip.NewWriter(w)
	}}
	Brotli = Codec{Ext: "br", NewWriter: func(w io.Writer) io.WriteCloser {
		return brotli.NewWriter(w)
	}}
)

// CodecByName maps "gzip"/"gz" and "brotli"/"br" to a Codec. An empty
// name selects gzip.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gzip", "gz":
		return Gzip, nil
	case "brotli", "br":
		return Brotli, nil
	default:
		return Codec{}, fmt.Errorf("unknown compression %q", name)
	}
}

// RenameFunc archives the file at path before a new stream is opened
// over it. info is the result of the stat the caller already did.
type RenameFunc func(fs afero.Fs, file string, info os.FileInfo) error

// Func returns c as a RenameFunc
func (c Codec) Func() RenameFunc {
	return func(fs afero.Fs, file string, info os.FileInfo) error {
		return CompressLog(fs, file, info, c)
	}
}

// GzipCompressLog compresses file with gzip and renames it after its
// creation date
func GzipCompressLog(fs afero.Fs, file string, info os.FileInfo) error {
	return CompressLog(fs, file, info, Gzip)
}

// BrotliCompressLog compresses file with brotli and renames it after its
// creation date
func BrotliCompressLog(fs afero.Fs, file string, info os.FileInfo) error {
	return CompressLog(fs, file, info, Brotli)
}

// CompressLog reads file, compresses its content with c, writes the
// compressed bytes back over file and renames it to its archive name.
// info may be nil.
func CompressLog(fs afero.Fs, file string, info os.FileInfo, c Codec) error {
	if info == nil {
		var err error
		if info, err = fs.Stat(file); err != nil {
			return err
		}
	}

	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return err
	}

	created, err := FileCreationDate(fs, file, CreationDateOptions{
		Info:  info,
		Lines: strings.Split(string(data), "\n"),
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := c.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("compress %s: %w", file, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("compress %s: %w", file, err)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	if err := afero.WriteFile(fs, file, buf.Bytes(), perm); err != nil {
		return err
	}
	return fs.Rename(file, ArchiveName(file, created, c.Ext))
}
