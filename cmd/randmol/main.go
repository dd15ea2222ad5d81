// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	. "github.com/andrew-torda/molread/pkg/common"
	"github.com/andrew-torda/molread/pkg/randmol"
)

func mymain() int {
	f := flag.NewFlagSet("randmol", flag.ExitOnError)
	const iseed int64 = 1637
	var args randmol.RandMolArgs

	f.BoolVar(&args.MkErr, "e", false, "provoke errors")
	f.StringVar(&args.Prefix, "p", "MOL", "prefix for compound names")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		return ExitUsageError
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandmol [..] file nmol natom")
		f.Usage()
		return ExitUsageError
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nmol, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		return ExitUsageError
	} else {
		args.Nmol = int(nmol)
	}
	if natom, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		return ExitUsageError
	} else {
		args.Natom = int(natom)
	}

	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			return ExitFailure
		}
		defer ft.Close()
		args.Wrtr = ft
	}

	if err := randmol.RandMolMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
