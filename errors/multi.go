package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors are given, nil is returned. A single error is returned as it
// is. Multi errors given as arguments are flattened.
func Append(errs ...error) error {
	var res multiErr
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, err)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr represents a group of errors. It is returned by Append and
// should not be created directly.
type multiErr []error

func (errs multiErr) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: [%s]", len(errs), strings.Join(msgs, "; "))
}

// Unpack implements the unpacker interface.
func (errs multiErr) Unpack() []error {
	return errs
}
