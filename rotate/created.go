package rotate

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// CreationDateOptions lets callers pass data they already have so
// FileCreationDate does not touch the filesystem again
type CreationDateOptions struct {
	Info  os.FileInfo
	Lines []string
}

// FileCreationDate returns when file was started. A bracketed timestamp
// on the first line wins; otherwise the filesystem's birth time, then
// its change time, then its modification time.
func FileCreationDate(fs afero.Fs, file string, opts CreationDateOptions) (time.Time, error) {
	info := opts.Info
	if info == nil {
		var err error
		if info, err = fs.Stat(file); err != nil {
			return time.Time{}, err
		}
	}

	lines := opts.Lines
	if lines == nil {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return time.Time{}, err
		}
		lines = strings.Split(string(data), "\n")
	}

	if len(lines) > 0 {
		if t, ok := parseHeader(lines[0]); ok {
			return t, nil
		}
	}

	birth, change := fileTimes(osPath(fs, file), info)
	switch {
	case !birth.IsZero():
		return birth, nil
	case !change.IsZero():
		return change, nil
	default:
		return info.ModTime(), nil
	}
}

// osPath returns file when fs addresses the real OS filesystem directly,
// so path-based syscalls see the same file. Other filesystems, including
// wrappers over the OS such as BasePathFs, get "".
func osPath(fs afero.Fs, file string) string {
	if _, ok := fs.(*afero.OsFs); ok {
		return file
	}
	return ""
}

func parseHeader(line string) (time.Time, bool) {
	header := strings.TrimSpace(line)
	if len(header) < 2 || header[0] != '[' || header[len(header)-1] != ']' {
		return time.Time{}, false
	}
	ts := header[1 : len(header)-1]
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		return t, true
	}
	t, err := cast.ToTimeE(ts)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}
