package stream

import (
	"os"

	"github.com/spf13/afero"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/rotate"
)

type rotationKind int

const (
	rotationDefault rotationKind = iota
	rotationCodec
	rotationCustom
)

// Rotation says how Rename mode archives the previous file. The zero
// value is DefaultRotation.
type Rotation struct {
	kind  rotationKind
	codec rotate.Codec
	hook  rotate.RenameFunc
}

// DefaultRotation gzips the previous file and renames it after its
// creation date
func DefaultRotation() Rotation {
	return Rotation{}
}

// Compress archives with the given codec instead of gzip
func Compress(c rotate.Codec) Rotation {
	return Rotation{kind: rotationCodec, codec: c}
}

// Custom hands the previous file to fn. A nil fn is rejected when the
// rotation runs.
func Custom(fn rotate.RenameFunc) Rotation {
	return Rotation{kind: rotationCustom, hook: fn}
}

// IsCustom reports whether r runs a caller-supplied hook
func (r Rotation) IsCustom() bool {
	return r.kind == rotationCustom
}

func (r Rotation) apply(fs afero.Fs, file string, info os.FileInfo) error {
	switch r.kind {
	case rotationCustom:
		if r.hook == nil {
			return core.NewConfigurationError("rotate", "custom rotation without a hook")
		}
		return r.hook(fs, file, info)
	case rotationCodec:
		return rotate.CompressLog(fs, file, info, r.codec)
	default:
		return rotate.GzipCompressLog(fs, file, info)
	}
}
