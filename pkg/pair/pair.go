// Package pair matches up the members of two sets of the same size.
package pair

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSizeMismatch is returned when the two sets have different sizes.
// Nothing is paired in that case.
var ErrSizeMismatch = errors.New("pair: the input sets must be of equal size")

// Set is a set of comparable things.
type Set[T comparable] map[T]struct{}

// NewSet makes a set from some values. Duplicates collapse.
func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Has says if v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Pair holds one member from each set.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// CreatePairs walks over both sets together and makes a pair from
// the n'th member of each. Which member goes with which depends on map
// iteration order, so it is not predictable. What is guaranteed is that
// there are len(s1) pairs and every member of each set is used once.
func CreatePairs[A, B comparable](s1 Set[A], s2 Set[B]) (Set[Pair[A, B]], error) {
	if len(s1) != len(s2) {
		return nil, errors.Wrapf(ErrSizeMismatch, "sizes %d and %d", len(s1), len(s2))
	}
	seconds := make([]B, 0, len(s2))
	for b := range s2 {
		seconds = append(seconds, b)
	}
	ret := make(Set[Pair[A, B]], len(s1))
	i := 0
	for a := range s1 {
		ret[Pair[A, B]{First: a, Second: seconds[i]}] = struct{}{}
		i++
	}
	return ret, nil
}

// Firsts collects the first members of a set of pairs.
func Firsts[A, B comparable](ps Set[Pair[A, B]]) Set[A] {
	ret := make(Set[A], len(ps))
	for p := range ps {
		ret[p.First] = struct{}{}
	}
	return ret
}

// Seconds collects the second members of a set of pairs.
func Seconds[A, B comparable](ps Set[Pair[A, B]]) Set[B] {
	ret := make(Set[B], len(ps))
	for p := range ps {
		ret[p.Second] = struct{}{}
	}
	return ret
}
