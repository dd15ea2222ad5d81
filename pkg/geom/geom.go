// Calculate some geometries for the atoms of a compound, distances
// and centres.

package geom

import (
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/molread/pkg/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmpty   = Error("no usable coordinates")
	ErrMatCols = Error("coordinate matrix must have three columns")
)

// xyzDiff gets the difference of two vectors
func xyzDiff(start, end cmmn.Xyz) (diff cmmn.Xyz) {
	diff.X = end.X - start.X
	diff.Y = end.Y - start.Y
	diff.Z = end.Z - start.Z
	return diff
}

// Dist is the distance between two points.
func Dist(a, b cmmn.Xyz) float32 {
	d := xyzDiff(a, b)
	r := float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	return float32(math.Sqrt(r))
}

// Centroid is the mean of the usable coordinates in xs. Broken ones
// are jumped over.
func Centroid(xs cmmn.XyzSl) (cmmn.Xyz, error) {
	var sx, sy, sz float64
	var n int
	for i := range xs {
		if !xs[i].Ok() {
			continue
		}
		sx += float64(xs[i].X)
		sy += float64(xs[i].Y)
		sz += float64(xs[i].Z)
		n++
	}
	if n == 0 {
		return cmmn.BrokenXyz, ErrEmpty
	}
	fn := float64(n)
	return cmmn.Xyz{X: float32(sx / fn), Y: float32(sy / fn), Z: float32(sz / fn)}, nil
}

// MaxDist is the largest distance between any two usable points. With
// fewer than two points it is zero.
func MaxDist(xs cmmn.XyzSl) (dmax float32) {
	for i := range xs {
		if !xs[i].Ok() {
			continue
		}
		for j := i + 1; j < len(xs); j++ {
			if !xs[j].Ok() {
				continue
			}
			if d := Dist(xs[i], xs[j]); d > dmax {
				dmax = d
			}
		}
	}
	return
}

// MatToXyz takes an n x 3 matrix, one row per atom, and returns the
// coordinates as a slice.
func MatToXyz(mat *matrix.FMatrix2d) (cmmn.XyzSl, error) {
	nrow, ncol := mat.Size()
	if nrow == 0 {
		return cmmn.XyzSl{}, nil
	}
	if ncol != 3 {
		return nil, ErrMatCols
	}
	xs := make(cmmn.XyzSl, nrow)
	for i, row := range mat.Mat {
		xs[i] = cmmn.Xyz{X: row[0], Y: row[1], Z: row[2]}
	}
	return xs, nil
}

// XyzToMat is the reverse of MatToXyz.
func XyzToMat(xs cmmn.XyzSl) *matrix.FMatrix2d {
	mat := matrix.NewFMatrix2d(len(xs), 3)
	for i, x := range xs {
		mat.Mat[i][0], mat.Mat[i][1], mat.Mat[i][2] = x.X, x.Y, x.Z
	}
	return mat
}
