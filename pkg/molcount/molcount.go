// 3 Aug 2020

// Package molcount counts the records in a compound file without
// parsing them. A record is a line whose first word is COMPND.
package molcount

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

var compnd = []byte("COMPND")

// isCompnd says if a line starts a record.
func isCompnd(line []byte) bool {
	line = bytes.TrimLeft(line, " \t")
	if !bytes.HasPrefix(line, compnd) {
		return false
	}
	if len(line) == len(compnd) {
		return true
	}
	switch line[len(compnd)] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// countBuf counts the records in a buffer holding a whole file.
func countBuf(buf []byte) (n int) {
	for len(buf) > 0 {
		line := buf
		if i := bytes.IndexByte(buf, '\n'); i != -1 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}
		if isCompnd(line) {
			n++
		}
	}
	return n
}

// ByMmap maps the file into memory and counts there.
func ByMmap(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return 0, err
	} else if fi.Size() == 0 { // cannot map an empty file
		return 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return countBuf(mm), nil
}

// ByReading reads the file in pieces of bufsize. A line longer than
// the buffer comes in more than one piece and we only look at the
// start of the first.
func ByReading(fname string, bufsize int) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	return count(fp, bufsize)
}

func count(rdr io.Reader, bufsize int) (int, error) {
	br := bufio.NewReaderSize(rdr, bufsize)
	n := 0
	lineStart := true
	for {
		piece, err := br.ReadSlice('\n')
		if lineStart && isCompnd(piece) {
			n++
		}
		switch err {
		case nil:
			lineStart = true
		case bufio.ErrBufferFull:
			lineStart = false
		case io.EOF:
			return n, nil
		default:
			return 0, err
		}
	}
}
