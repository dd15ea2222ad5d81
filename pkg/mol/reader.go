package mol

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Keywords at the start of lines.
const (
	kwCompnd = "COMPND"
	kwAtom   = "ATOM"
	kwEnd    = "END"
)

// Indices of fields in an ATOM line.
const (
	atomElem   = 2
	atomCoord  = 3
	atomNField = atomCoord + 3
)

// Options are the choices passed in from the caller. The zero value is
// fine.
type Options struct {
	RejectDup bool       // duplicate compound names are an error
	Logger    log.Logger // debugging output, nil for none
}

// lineScanner is a wrapper around bufio.Reader that jumps over blank
// lines, splits lines into words and counts lines, so we can print
// the line number in error messages.
// We do not use bufio.Scanner. When the source fails, it hands back
// the partial last line as if it were complete, and we would report a
// read error as a broken record.
type lineScanner struct {
	rdr  *bufio.Reader
	line string // last line we read
	n    int    // line number
}

func newLineScanner(r io.Reader) lineScanner {
	return lineScanner{rdr: bufio.NewReader(r)}
}

// next returns the words of the next line which is not blank. At the
// end of input it returns io.EOF. Any other error comes from the
// underlying reader, even if part of a line had arrived.
func (s *lineScanner) next() ([]string, error) {
	for {
		line, err := s.rdr.ReadString('\n')
		if err != nil && err != io.EOF {
			s.line = ""
			return nil, errors.Wrapf(err, "reading after line %d", s.n)
		}
		if line == "" { // err must be io.EOF
			s.line = ""
			return nil, io.EOF
		}
		s.n++
		s.line = strings.TrimRight(line, "\r\n")
		if f := strings.Fields(s.line); len(f) > 0 {
			return f, nil // last line may have no newline
		}
	}
}

// Reader reads compound records, one at a time, from a stream.
// It must not be used from more than one goroutine.
type Reader struct {
	lineScanner
	rejectDup bool
	logger    log.Logger
}

// NewReader wraps r. opts may be nil.
func NewReader(r io.Reader, opts *Options) *Reader {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Reader{
		lineScanner: newLineScanner(r),
		rejectDup:   opts.RejectDup,
		logger:      logger,
	}
}

// malformed builds an error from the current line.
func (r *Reader) malformed(desc string) error {
	return &MalformedRecordError{Line: r.n, Text: firstPart(r.line), Desc: desc}
}

// ReadMolecule reads one record. When there are no more records, it
// returns io.EOF. This is the normal way to finish and is not an error.
// On an error, the molecule is empty and the stream is left wherever
// the reading stopped.
func (r *Reader) ReadMolecule() (Molecule, error) {
	f, err := r.next()
	if err != nil {
		return Molecule{}, err // io.EOF or a real problem
	}
	if f[0] != kwCompnd {
		return Molecule{}, r.malformed("expected " + kwCompnd + ", got " + f[0])
	}
	if len(f) < 2 {
		return Molecule{}, r.malformed(kwCompnd + " with no name")
	}
	m := Molecule{Name: f[1]}
	start := r.n
	for {
		if f, err = r.next(); err == io.EOF {
			desc := fmt.Sprintf("input finished before %s of compound %s from line %d", kwEnd, m.Name, start)
			return Molecule{}, r.malformed(desc)
		} else if err != nil {
			return Molecule{}, err
		}
		if f[0] == kwEnd {
			break
		}
		switch {
		case f[0] != kwAtom:
			return Molecule{}, r.malformed("expected " + kwAtom + " or " + kwEnd + ", got " + f[0])
		case len(f) <= atomElem:
			return Molecule{}, r.malformed(kwAtom + " line with no element")
		case len(f) != atomNField:
			desc := fmt.Sprintf("%s line has %d coordinates, wanted 3", kwAtom, len(f)-atomCoord)
			return Molecule{}, r.malformed(desc)
		}
		a := Atom{Elem: f[atomElem]}
		copy(a.Coord[:], f[atomCoord:])
		m.Atoms = append(m.Atoms, a)
	}
	level.Debug(r.logger).Log("msg", "read compound", "name", m.Name, "natom", len(m.Atoms), "line", start)
	return m, nil
}

// ReadAll reads records until the input is finished and puts them in
// a dictionary. With no records, the dictionary is empty, not nil.
// A compound with no atoms comes back with a nil atom slice.
// Any error stops everything and the dictionary is nil.
func (r *Reader) ReadAll() (CompoundDict, error) {
	cd := make(CompoundDict)
	for {
		m, err := r.ReadMolecule()
		if err == io.EOF {
			return cd, nil
		} else if err != nil {
			return nil, err
		}
		if _, dup := cd[m.Name]; dup {
			if r.rejectDup {
				return nil, errors.Wrapf(ErrDuplicateName, "%s, record ending line %d", m.Name, r.n)
			}
			level.Warn(r.logger).Log("msg", "compound name seen before, replacing", "name", m.Name, "line", r.n)
		}
		cd[m.Name] = m.Atoms
	}
}

// ReadAllMolecules is the short way to read everything from rdr.
func ReadAllMolecules(rdr io.Reader, opts *Options) (CompoundDict, error) {
	return NewReader(rdr, opts).ReadAll()
}
