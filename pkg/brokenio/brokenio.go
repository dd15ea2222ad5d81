// brokenio is a wrapper around an io.Reader which breaks on purpose.
// Typical use: you have a reader for a compound file and want to see
// what the parser does when the source dies half way through.
//   rdr = brokenio.NewReader(rdr)
//   rdr.SetFailAfter(100)
// Everything then functions as before, until 100 bytes have been
// delivered. After that, every Read returns the failure error.
// A failure on the first read can also be returned without an error,
// as one sees with a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what we return, unless the caller sets something else.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// A BrknRdr is modelled on the Readers in the standard library, but
// with settings controlling when it fails.
// If verbose is true, print out the amount of data when it is closed.
type BrknRdr struct {
	rdrOrig      io.Reader // Wrapped reader
	rnd          *rand.Rand
	failErr      error
	failAfter    int     // fail after this many bytes, -1 for never
	probZeroFile float32 // Probability of behaving like a zero length file
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a new reader, wrapping the old one. By default it
// does not fail.
func NewReader(rIn io.Reader) *BrknRdr {
	return &BrknRdr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(1)),
		failErr:   ErrBroken,
		failAfter: -1,
	}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdr) SetVerbose(newV bool) { r.verbose = newV }

// SetFailAfter makes the reader fail once n bytes have been read.
// A negative n means never fail.
func (r *BrknRdr) SetFailAfter(n int) { r.failAfter = n }

// SetErr sets the error returned on failure.
func (r *BrknRdr) SetErr(e error) { r.failErr = e }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on
// the first read. It must be a value from 0 to 1. We do not check if
// the argument is valid.
func (r *BrknRdr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetSeed resets the random number generator.
func (r *BrknRdr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// NByte says how many bytes have gone through.
func (r *BrknRdr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through. A read is shortened so it stops exactly at the
// failure point.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	first := r.nCalled == 0
	r.nCalled++
	if first && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, r.failErr
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the original reader if it can be closed.
func (r *BrknRdr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdrOrig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
