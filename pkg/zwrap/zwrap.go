// Package zwrap takes an open compound file and, if it is gzipped, wraps
// it so reads come from the decompressor. Close shuts the decompressor,
// then the file.

package zwrap

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// gzip files start with these two bytes
var gzMagic = [2]byte{0x1f, 0x8b}

// ReadSeekCloser is what we need to look at the start of a file and
// then go back.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// ZRdr is a ReadCloser that may or may not be decompressing.
type ZRdr struct {
	src  io.ReadCloser
	zrdr *gzip.Reader // nil if the source is not compressed
}

// Compressed says if we are reading through the decompressor.
func (z *ZRdr) Compressed() bool { return z.zrdr != nil }

// Read reads from the decompressor if there is one, otherwise
// straight from the source.
func (z *ZRdr) Read(p []byte) (int, error) {
	if z.zrdr != nil {
		return z.zrdr.Read(p)
	}
	return z.src.Read(p)
}

// Close closes the decompressor, then the underlying source. Both
// are closed, even if the first fails.
func (z *ZRdr) Close() error {
	var zerr error
	if z.zrdr != nil {
		zerr = z.zrdr.Close()
	}
	serr := z.src.Close()
	switch {
	case zerr != nil && serr != nil:
		return errors.Wrapf(zerr, "also closing source: %v", serr)
	case zerr != nil:
		return zerr
	}
	return serr
}

// Wrap assumes src is gzipped. It fails if the gzip header cannot be
// read.
func Wrap(src io.ReadCloser) (*ZRdr, error) {
	zrdr, err := gzip.NewReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "zwrap")
	}
	return &ZRdr{src: src, zrdr: zrdr}, nil
}

// WrapMaybe peeks at the first two bytes of src. If they are the
// gzip magic number, we return a decompressing reader, otherwise a
// plain one. Either way, src is rewound first. What comes back cannot
// seek.
func WrapMaybe(src ReadSeekCloser) (*ZRdr, error) {
	var head [2]byte
	n, err := io.ReadFull(src, head[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, errors.Wrap(err, "zwrap peeking")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "zwrap rewinding")
	}
	if n == len(head) && head == gzMagic {
		return Wrap(src)
	}
	return &ZRdr{src: src}, nil
}
