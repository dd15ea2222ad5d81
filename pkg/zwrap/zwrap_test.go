// Test Zwrap
package zwrap_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/andrew-torda/molread/pkg/zwrap"
)

const plain = "COMPND TEST\nATOM 1 N 0.1 0.2 0.3\nEND\n"

// gzipped returns plain, compressed.
func gzipped(t *testing.T) []byte {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write([]byte(plain)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// writeToTmp writes a byte slice to a temporary file and returns it,
// rewound.
func writeToTmp(t *testing.T, data []byte) *os.File {
	tmpf, err := os.CreateTemp("", "del_me_testing")
	if err != nil {
		t.Fatal("Fail getting TempFile")
	}
	t.Cleanup(func() { os.Remove(tmpf.Name()) })
	if _, err := tmpf.Write(data); err != nil {
		t.Fatal("fail writing to tempfile")
	}
	if _, err := tmpf.Seek(0, io.SeekStart); err != nil {
		t.Fatal("Seek fail on " + tmpf.Name())
	}
	return tmpf
}

func TestWrap(t *testing.T) {
	tmpf := writeToTmp(t, gzipped(t))
	z, err := zwrap.Wrap(tmpf)
	if err != nil {
		t.Fatal("Fail on correctly gzipped file", err)
	}
	b, err := io.ReadAll(z)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != plain {
		t.Errorf("wrong string: %q", b)
	}
	if err := z.Close(); err != nil {
		t.Errorf("Error closing: %s", err)
	}
}

func TestWrapNotCompressed(t *testing.T) {
	tmpf := writeToTmp(t, []byte(plain))
	defer tmpf.Close()
	if _, err := zwrap.Wrap(tmpf); err == nil {
		t.Fatal("Wrap should fail on a plain file")
	}
}

// WrapMaybe should not fail on either sort of file and should give
// back the same text.
func TestWrapMaybe(t *testing.T) {
	for _, tc := range []struct {
		data []byte
		comp bool
	}{
		{gzipped(t), true},
		{[]byte(plain), false},
		{[]byte("C"), false},
		{[]byte{}, false},
	} {
		tmpf := writeToTmp(t, tc.data)
		z, err := zwrap.WrapMaybe(tmpf)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v: %v", tc.comp, err)
		}
		if z.Compressed() != tc.comp {
			t.Errorf("Compressed() got %v wanted %v", z.Compressed(), tc.comp)
		}
		b, err := io.ReadAll(z)
		if err != nil {
			t.Fatal(err)
		}
		want := string(tc.data)
		if tc.comp {
			want = plain
		}
		if string(b) != want {
			t.Errorf("got %q wanted %q", b, want)
		}
		if err := z.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}
