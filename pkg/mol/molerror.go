// An error that saves the line number and the line we were trying
// to read. The reader builds these with malformed().
package mol

import (
	"strconv"

	"github.com/pkg/errors"
)

const maxMsgLen = 70

var (
	// ErrMalformed is wrapped by every *MalformedRecordError, so
	// errors.Is(err, ErrMalformed) works.
	ErrMalformed = errors.New("malformed compound record")
	// ErrDuplicateName only comes back if Options.RejectDup is set.
	ErrDuplicateName = errors.New("duplicate compound name")
)

// MalformedRecordError says where the input stopped making sense.
type MalformedRecordError struct {
	Line int    // line number, counting from 1, 0 if unknown
	Text string // start of the line that provoked the error
	Desc string // Description of error
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

// Error gives the line number, description and, if we have it, the
// start of the offending line.
func (e *MalformedRecordError) Error() string {
	var errmsg string
	if e.Line != 0 {
		errmsg = "line " + strconv.Itoa(e.Line) + ": "
	}
	errmsg += e.Desc
	if e.Text != "" {
		errmsg += "\nline starting with\n" + e.Text
	}
	return errmsg
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformed }
