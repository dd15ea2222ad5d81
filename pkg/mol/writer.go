package mol

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// isWord says if s would come back as a single word from a reader.
func isWord(s string) bool {
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) == -1
}

// checkWords makes sure nothing we write would be split or lost when
// it is read back.
func checkWords(m Molecule) error {
	if !isWord(m.Name) {
		return errors.Errorf("compound name %q is not a single word", m.Name)
	}
	for i, a := range m.Atoms {
		if !isWord(a.Elem) {
			return errors.Errorf("compound %s atom %d: element %q is not a single word", m.Name, i+1, a.Elem)
		}
		for _, c := range a.Coord {
			if !isWord(c) {
				return errors.Errorf("compound %s atom %d: coordinate %q is not a single word", m.Name, i+1, c)
			}
		}
	}
	return nil
}

// writeMolecule does the work without flushing.
func writeMolecule(w *bufio.Writer, m Molecule) error {
	if err := checkWords(m); err != nil {
		return err
	}
	w.WriteString(kwCompnd + " " + m.Name + "\n")
	for i, a := range m.Atoms {
		w.WriteString(kwAtom + " ")
		w.WriteString(strconv.Itoa(i + 1))
		w.WriteString(" " + a.Elem + " " + a.Coord[0] + " " + a.Coord[1] + " " + a.Coord[2] + "\n")
	}
	_, err := w.WriteString(kwEnd + "\n")
	return err
}

// WriteMolecule writes one record. Atoms are numbered from 1.
func WriteMolecule(w io.Writer, m Molecule) error {
	bw := bufio.NewWriter(w)
	if err := writeMolecule(bw, m); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteMolecules writes a whole dictionary, sorted by name, so the
// output does not depend on map order. Reading it back gives the same
// dictionary.
func WriteMolecules(w io.Writer, cd CompoundDict) error {
	bw := bufio.NewWriter(w)
	for _, name := range cd.Names() {
		if err := writeMolecule(bw, Molecule{Name: name, Atoms: cd[name]}); err != nil {
			return err
		}
	}
	return bw.Flush()
}
