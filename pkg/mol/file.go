package mol

import (
	"os"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/andrew-torda/molread/pkg/zwrap"
)

// ReadFile opens fname, which may be gzipped, and reads all the
// compounds in it. Errors come back with the file name attached.
func ReadFile(fname string, opts *Options) (CompoundDict, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err // already has the name
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, errors.Wrapf(err, "reading %s", fname)
	}
	defer rdr.Close()

	r := NewReader(rdr, opts)
	level.Debug(r.logger).Log("msg", "opened", "file", fname, "gzip", rdr.Compressed())
	cd, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", fname)
	}
	return cd, nil
}

// WriteFile writes cd to fname, creating or truncating it.
func WriteFile(fname string, cd CompoundDict) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WriteMolecules(fp, cd); err != nil {
		fp.Close()
		return errors.Wrapf(err, "writing %s", fname)
	}
	return fp.Close()
}
