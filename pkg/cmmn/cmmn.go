// Package cmmn has common definitions for coordinates read from
// compound files.
package cmmn

import (
	"math"
)

type Xyz struct{ X, Y, Z float32 }
type XyzSl []Xyz // xyz's are coordinates

// BrokenXyz marks a coordinate that could not be read.
var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

// Ok says if a coordinate is usable, that is, not BrokenXyz.
func (xyz *Xyz) Ok() bool {
	return *xyz != BrokenXyz
}

// NOk counts the usable coordinates in a slice.
func (xs XyzSl) NOk() (n int) {
	for i := range xs {
		if xs[i].Ok() {
			n++
		}
	}
	return
}
