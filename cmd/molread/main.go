// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	. "github.com/andrew-torda/molread/pkg/common"
	"github.com/andrew-torda/molread/pkg/geom"
	"github.com/andrew-torda/molread/pkg/mol"
)

// summarise logs one line per compound.
func summarise(logger log.Logger, fname string, cd mol.CompoundDict) {
	for _, name := range cd.Names() {
		m, _ := cd.Molecule(name)
		xs, nBad := m.Xyzs()
		kv := []interface{}{"file", fname, "compound", name, "natom", len(m.Atoms)}
		if c, err := geom.Centroid(xs); err == nil {
			kv = append(kv, "centre", fmt.Sprintf("%.3f,%.3f,%.3f", c.X, c.Y, c.Z),
				"maxdist", fmt.Sprintf("%.3f", geom.MaxDist(xs)))
		}
		if nBad > 0 {
			kv = append(kv, "bad_coords", nBad)
		}
		level.Info(logger).Log(kv...)
	}
}

// writeOut writes the dictionary to a file or to stdout.
func writeOut(fname string, stdout io.Writer, cd mol.CompoundDict) error {
	if fname == "-" {
		return mol.WriteMolecules(stdout, cd)
	}
	return mol.WriteFile(fname, cd)
}

func mymain(args []string, stdout, stderr io.Writer) int {
	f := flag.NewFlagSet("molread", flag.ContinueOnError)
	f.SetOutput(stderr)
	rejectDup := f.Bool("d", false, "duplicate compound names are an error")
	outfile := f.String("w", "", "write compounds to this file, - for stdout")
	verbose := f.Bool("v", false, "verbose")
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: molread [options] file [file ...]")
		f.PrintDefaults()
	}
	if err := f.Parse(args); err != nil {
		return ExitUsageError
	}
	if f.NArg() == 0 {
		f.Usage()
		return ExitUsageError
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	opts := &mol.Options{RejectDup: *rejectDup, Logger: logger}

	all := make(mol.CompoundDict)
	for _, fname := range f.Args() {
		cd, err := mol.ReadFile(fname, opts)
		if err != nil {
			level.Error(logger).Log("msg", "reading failed", "err", err)
			return ExitFailure
		}
		var size string
		if fi, err := os.Stat(fname); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		level.Info(logger).Log("file", fname, "size", size, "ncompound", len(cd), "natom", cd.NAtom())
		summarise(logger, fname, cd)
		for name, atoms := range cd {
			if _, dup := all[name]; dup {
				if *rejectDup {
					level.Error(logger).Log("msg", "compound in more than one file", "compound", name, "file", fname)
					return ExitFailure
				}
				level.Warn(logger).Log("msg", "compound seen in earlier file, replacing", "compound", name, "file", fname)
			}
			all[name] = atoms
		}
	}
	if *outfile != "" {
		if err := writeOut(*outfile, stdout, all); err != nil {
			level.Error(logger).Log("msg", "writing failed", "err", err)
			return ExitFailure
		}
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain(os.Args[1:], os.Stdout, os.Stderr))
}
