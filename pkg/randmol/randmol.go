// 31 July 2020

// Package randmol writes random compound files for testing and
// benchmarking the reader. The chemistry is nonsense.
package randmol

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"sync"

	"github.com/andrew-torda/molread/pkg/mol"
)

const boxSize = 50 // coordinates are in -boxSize..boxSize

var elements = []string{"C", "C", "C", "N", "O", "H", "H", "S", "P", "Fe"}

// RandMolArgs is the set of arguments passed to the main function
type RandMolArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Prefix string    // compounds are called Prefix1, Prefix2, ...
	Nmol   int       // number of compounds
	Natom  int       // atoms per compound
	MkErr  bool      // Leave off the last END
}

func coord(rnd *rand.Rand) string {
	return strconv.FormatFloat(rnd.Float64()*2*boxSize-boxSize, 'f', 3, 32)
}

// getmol makes one random compound.
func getmol(name string, natom int, rnd *rand.Rand) mol.Molecule {
	m := mol.Molecule{Name: name, Atoms: make([]mol.Atom, natom)}
	for i := range m.Atoms {
		m.Atoms[i] = mol.Atom{
			Elem:  elements[rnd.Intn(len(elements))],
			Coord: [3]string{coord(rnd), coord(rnd), coord(rnd)},
		}
	}
	return m
}

// writemol takes compounds from the channel and writes them. The first
// write error is kept in *err and the rest of the channel is drained.
func writemol(mChan <-chan mol.Molecule, args *RandMolArgs, err *error, wg *sync.WaitGroup) {
	defer wg.Done()
	var i int
	for m := range mChan {
		i++
		if *err != nil {
			continue
		}
		if !args.MkErr || i < args.Nmol {
			*err = mol.WriteMolecule(args.Wrtr, m)
			continue
		}
		var b bytes.Buffer // Last one, chop off the END
		if *err = mol.WriteMolecule(&b, m); *err == nil {
			_, *err = args.Wrtr.Write(bytes.TrimSuffix(b.Bytes(), []byte("END\n")))
		}
	}
}

// RandMolMain writes random compounds to an io.Writer.
func RandMolMain(args *RandMolArgs) error {
	if args.Nmol < 0 || args.Natom < 0 {
		return fmt.Errorf("randmol: negative count, %d compounds %d atoms", args.Nmol, args.Natom)
	}
	prefix := args.Prefix
	if prefix == "" {
		prefix = "MOL"
	}
	var wg sync.WaitGroup
	var werr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	mChan := make(chan mol.Molecule)
	wg.Add(1)
	go writemol(mChan, args, &werr, &wg)
	for i := 1; i <= args.Nmol; i++ {
		mChan <- getmol(prefix+strconv.Itoa(i), args.Natom, rnd)
	}
	close(mChan)
	wg.Wait()
	return werr
}
