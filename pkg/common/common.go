// 29 Apr 2020

// Package common has the bits shared by the commands and tests,
// exit codes and a temporary file helper.
package common

import (
	"os"

	"github.com/pkg/errors"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes s to a new temporary file and returns its name. The
// caller removes it. On failure, nothing is left lying around.
func WrtTemp(s string) (string, error) {
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", errors.Wrap(err, "making temp file")
	}
	name := fp.Name()
	_, err = fp.WriteString(s)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return "", errors.Wrapf(err, "writing temp file %s", name)
	}
	return name, nil
}
