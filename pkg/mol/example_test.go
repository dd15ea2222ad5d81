package mol_test

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/molread/pkg/mol"
)

func ExampleReader_ReadMolecule() {
	r := mol.NewReader(strings.NewReader(test1), nil)
	for {
		m, err := r.ReadMolecule()
		if err == io.EOF {
			break
		} else if err != nil {
			log.Fatal(err)
		}
		fmt.Println(m.Name)
		for _, a := range m.Atoms {
			fmt.Println(a.Elem, a.Coord)
		}
	}
	// Output:
	// TEST
	// N [0.1 0.2 0.3]
	// N [0.2 0.1 0.0]
}

func ExampleReadAllMolecules() {
	cd, err := mol.ReadAllMolecules(strings.NewReader(twoRec), nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range cd.Names() {
		fmt.Println(name, len(cd[name]))
	}
	// Output:
	// T1 2
	// T2 2
}
