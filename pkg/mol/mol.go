package mol

import (
	"sort"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/pkg/errors"

	"github.com/andrew-torda/molread/pkg/cmmn"
)

// Atom is an element and its coordinates as they were written in the
// file. It is a value type and the array is copied with it, so nobody
// can change an atom behind your back.
type Atom struct {
	Elem  string
	Coord [3]string
}

// Molecule is one record, a name and its atoms in file order.
type Molecule struct {
	Name  string
	Atoms []Atom
}

// CompoundDict maps compound names to atoms. It is what you get from
// reading a whole file.
type CompoundDict map[string][]Atom

// Xyz converts the coordinate strings to numbers. If one of them is
// not a number, we return BrokenXyz and the error.
func (a Atom) Xyz() (cmmn.Xyz, error) {
	var f [3]float32
	for i, s := range a.Coord {
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return cmmn.BrokenXyz, errors.Wrapf(err, "atom %s coordinate %d", a.Elem, i+1)
		}
		f[i] = float32(x)
	}
	return cmmn.Xyz{X: f[0], Y: f[1], Z: f[2]}, nil
}

// Dict returns the molecule as a dictionary with one entry.
func (m Molecule) Dict() CompoundDict {
	return CompoundDict{m.Name: m.Atoms}
}

// Xyzs converts all the coordinates. Atoms we cannot convert are set
// to BrokenXyz and counted in nBad.
func (m Molecule) Xyzs() (xs cmmn.XyzSl, nBad int) {
	xs = make(cmmn.XyzSl, len(m.Atoms))
	for i, a := range m.Atoms {
		var err error
		if xs[i], err = a.Xyz(); err != nil {
			nBad++
		}
	}
	return xs, nBad
}

// Coords returns an n_atom x 3 matrix of coordinates. It stops at the
// first coordinate that is not a number.
func (m Molecule) Coords() (*matrix.FMatrix2d, error) {
	mat := matrix.NewFMatrix2d(len(m.Atoms), 3)
	for i, a := range m.Atoms {
		xyz, err := a.Xyz()
		if err != nil {
			return nil, errors.Wrapf(err, "compound %s atom %d", m.Name, i+1)
		}
		mat.Mat[i][0], mat.Mat[i][1], mat.Mat[i][2] = xyz.X, xyz.Y, xyz.Z
	}
	return mat, nil
}

// Names returns the compound names, sorted.
func (cd CompoundDict) Names() []string {
	names := make([]string, 0, len(cd))
	for k := range cd {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Molecule gets one compound back out of the dictionary.
func (cd CompoundDict) Molecule(name string) (Molecule, bool) {
	atoms, ok := cd[name]
	return Molecule{Name: name, Atoms: atoms}, ok
}

// NAtom is the total number of atoms over all compounds.
func (cd CompoundDict) NAtom() (n int) {
	for _, atoms := range cd {
		n += len(atoms)
	}
	return
}
