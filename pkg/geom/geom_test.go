package geom_test

import (
	"math"
	"testing"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/molread/pkg/cmmn"
	. "github.com/andrew-torda/molread/pkg/geom"
)

const eps = 1e-5

func near(a, b float32) bool { return math.Abs(float64(a-b)) < eps }

func TestDist(t *testing.T) {
	var dists = []struct {
		a, b cmmn.Xyz
		want float32
	}{
		{cmmn.Xyz{X: 0, Y: 0, Z: 0}, cmmn.Xyz{X: 0, Y: 0, Z: 0}, 0},
		{cmmn.Xyz{X: 0, Y: 0, Z: 0}, cmmn.Xyz{X: 3, Y: 4, Z: 0}, 5},
		{cmmn.Xyz{X: 1, Y: 1, Z: 1}, cmmn.Xyz{X: 1, Y: 1, Z: -1}, 2},
		{cmmn.Xyz{X: -1, Y: 0, Z: 0}, cmmn.Xyz{X: 1, Y: 0, Z: 0}, 2},
	}
	for _, d := range dists {
		if got := Dist(d.a, d.b); !near(got, d.want) {
			t.Errorf("Dist(%v, %v) got %f wanted %f", d.a, d.b, got, d.want)
		}
	}
}

func TestCentroid(t *testing.T) {
	xs := cmmn.XyzSl{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 4, Z: 6}, cmmn.BrokenXyz}
	c, err := Centroid(xs)
	if err != nil {
		t.Fatal(err)
	}
	if !near(c.X, 1) || !near(c.Y, 2) || !near(c.Z, 3) {
		t.Errorf("centroid got %v", c)
	}
	if _, err := Centroid(cmmn.XyzSl{cmmn.BrokenXyz}); err != ErrEmpty {
		t.Errorf("wanted ErrEmpty, got %v", err)
	}
	if _, err := Centroid(nil); err != ErrEmpty {
		t.Errorf("wanted ErrEmpty on nil, got %v", err)
	}
}

func TestMaxDist(t *testing.T) {
	xs := cmmn.XyzSl{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, cmmn.BrokenXyz, {X: 0, Y: 3, Z: 4}}
	want := float32(math.Sqrt(26)) // (1,0,0) to (0,3,4)
	if got := MaxDist(xs); !near(got, want) {
		t.Errorf("MaxDist got %f wanted %f", got, want)
	}
	if got := MaxDist(cmmn.XyzSl{{X: 0, Y: 0, Z: 0}, cmmn.BrokenXyz, {X: 0, Y: 3, Z: 4}}); !near(got, 5) {
		t.Errorf("MaxDist jumping over broken point got %f wanted 5", got)
	}
	if got := MaxDist(xs[:1]); got != 0 {
		t.Errorf("MaxDist of one point got %f", got)
	}
}

func TestMatRoundTrip(t *testing.T) {
	xs := cmmn.XyzSl{{X: 0.1, Y: 0.2, Z: 0.3}, {X: -1, Y: -2, Z: -3}}
	mat := XyzToMat(xs)
	if r, c := mat.Size(); r != 2 || c != 3 {
		t.Fatalf("matrix size %d x %d", r, c)
	}
	back, err := MatToXyz(mat)
	if err != nil {
		t.Fatal(err)
	}
	for i := range xs {
		if back[i] != xs[i] {
			t.Errorf("row %d got %v wanted %v", i, back[i], xs[i])
		}
	}
	if _, err := MatToXyz(matrix.NewFMatrix2d(2, 2)); err != ErrMatCols {
		t.Errorf("wanted ErrMatCols, got %v", err)
	}
	if back, err := MatToXyz(matrix.NewFMatrix2d(0, 3)); err != nil || len(back) != 0 {
		t.Errorf("empty matrix gave %v, %v", back, err)
	}
}
