package stream

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/rotate"
)

// InitialData returns the first line of a fresh log file. It receives
// the absolute path of the file.
type InitialData func(path string) (string, error)

// Literal returns an InitialData that always yields s. An empty s means
// fresh files start empty.
func Literal(s string) InitialData {
	return func(string) (string, error) { return s, nil }
}

// Options configures Create
type Options struct {
	// Path of the log file, relative paths are resolved against the
	// working directory
	Path string
	// Mode applied when the file already exists (default Append)
	Mode Mode
	// Rotation used by Rename mode (default gzip)
	Rotation Rotation
	// InitialData produces the first line of a fresh file. Nil writes
	// the rotate.LogDateHeader of the current time.
	InitialData InitialData
	// MaxArchives is the number of archives kept after a rotation
	// (0 = keep all)
	MaxArchives int
	// Fs is the filesystem to work on (default: the OS filesystem)
	Fs afero.Fs
	// Clock provides the time for the default header (default time.Now)
	Clock core.Clock
}

func applyDefaults(opts *Options) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock
	}
}

// Create prepares the file at opts.Path according to opts.Mode and
// opens it for writing. ctx is checked between filesystem steps.
func Create(ctx context.Context, opts Options) (*WriteStream, error) {
	if opts.Path == "" {
		return nil, core.NewConfigurationError("create write stream", "path is required")
	}
	applyDefaults(&opts)
	fs := opts.Fs

	file, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, err
	}

	info, err := fs.Stat(file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	exists := err == nil
	if exists && !info.Mode().IsRegular() {
		return nil, core.NewIncompatibleTargetError(file, info.Mode().String())
	}

	initial, err := initialContent(opts, file)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}

	if exists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := prepare(opts, file, info, initial); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	flags := os.O_CREATE | os.O_WRONLY
	if opts.Mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := fs.OpenFile(file, flags, 0o644)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.Size() == 0 && initial != "" {
		if _, err := f.WriteString(initial); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return NewWriteStream(file, f), nil
}

// prepare applies the mode to an existing file
func prepare(opts Options, file string, info os.FileInfo, initial string) error {
	fs := opts.Fs
	switch opts.Mode {
	case Truncate:
		return afero.WriteFile(fs, file, []byte(initial), 0o644)
	case Rename:
		if err := opts.Rotation.apply(fs, file, info); err != nil {
			return err
		}
		ok, err := afero.Exists(fs, file)
		if err != nil {
			return err
		}
		if !ok {
			if err := afero.WriteFile(fs, file, []byte(initial), 0o644); err != nil {
				return err
			}
		}
		return rotate.PruneArchives(fs, file, opts.MaxArchives)
	}
	return nil
}

func initialContent(opts Options, file string) (string, error) {
	if opts.InitialData == nil {
		return rotate.LogDateHeader(opts.Clock()) + "\n", nil
	}
	data, err := opts.InitialData(file)
	if err != nil || data == "" {
		return "", err
	}
	return data + "\n", nil
}

// WriteStream is an open log file. It is safe for concurrent use.
type WriteStream struct {
	mu     sync.Mutex
	path   string
	w      io.WriteCloser
	closed bool
}

// NewWriteStream wraps an already opened writer. Close closes w.
func NewWriteStream(path string, w io.WriteCloser) *WriteStream {
	return &WriteStream{path: path, w: w}
}

// Path returns the absolute path of the file
func (s *WriteStream) Path() string {
	return s.path
}

// Write writes p to the file
func (s *WriteStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, os.ErrClosed
	}
	return s.w.Write(p)
}

// WriteString writes str to the file
func (s *WriteStream) WriteString(str string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, os.ErrClosed
	}
	return io.WriteString(s.w, str)
}

// Closed reports whether Close has been called
func (s *WriteStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close syncs and closes the file. Calling it again is a no-op.
func (s *WriteStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if syncer, ok := s.w.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			_ = s.w.Close()
			return err
		}
	}
	return s.w.Close()
}
