package cmmn_test

import (
	"testing"

	. "github.com/andrew-torda/molread/pkg/cmmn"
)

func TestXyzOk(t *testing.T) {
	var xyz Xyz
	xyz = BrokenXyz
	if xyz.Ok() {
		t.Error("cannot even check if a value is OK")
	}
	xyz = Xyz{1, 1, 1}
	if !xyz.Ok() {
		t.Error("OK should be true")
	}
}

func TestNOk(t *testing.T) {
	xs := XyzSl{{1, 2, 3}, BrokenXyz, {0, 0, 0}, BrokenXyz}
	if n := xs.NOk(); n != 2 {
		t.Errorf("NOk got %d wanted 2", n)
	}
	if n := (XyzSl{}).NOk(); n != 0 {
		t.Errorf("NOk on empty slice got %d", n)
	}
}
