// 3 Aug 2020

// Open a compound file and count the number of COMPND lines. This
// should be the number of compounds, without bothering to parse them.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	. "github.com/andrew-torda/molread/pkg/common"
	"github.com/andrew-torda/molread/pkg/molcount"
)

const defaultBufSize = 64 * 1024

func mymain() int {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	f := flag.NewFlagSet("nmol", flag.ExitOnError)
	useMmap := f.Bool("m", false, "map the file into memory instead of reading it")
	bufsize := f.Int("b", defaultBufSize, "buffer size when reading")
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage: nmol [options] filename")
		f.PrintDefaults()
	}
	f.Parse(os.Args[1:])
	if f.NArg() != 1 {
		f.Usage()
		return ExitUsageError
	}
	fname := f.Arg(0)
	var n int
	var err error
	if *useMmap {
		n, err = molcount.ByMmap(fname)
	} else {
		n, err = molcount.ByReading(fname, *bufsize)
	}
	if err != nil {
		level.Error(logger).Log("file", fname, "err", err)
		return ExitFailure
	}
	fmt.Println(n)
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
