package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches the path of an invalid value to err and returns nil if err
// is nil. A path is made of Go field names and element indexes joined with
// dots, for example SuperAdminKeys.2 or LinkedWallets.0.
func Field(path string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{path: path, desc: description, err: err}
}

// AppendField clubs a field error with errs. A nil fieldErr leaves errs
// unchanged.
func AppendField(errs error, path string, fieldErr error) error {
	return Append(errs, Field(path, fieldErr, ""))
}

type fieldError struct {
	path string
	desc string
	err  error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return e.path + ": " + e.err.Error()
	}
	return e.path + ": " + e.desc + ": " + e.err.Error()
}

// Cause implements the causer interface.
func (e *fieldError) Cause() error {
	return e.err
}

// FieldErrors returns the field errors reported for path, in the order they
// were appended.
func FieldErrors(err error, path string) []error {
	var found []error
	walkFields(err, func(f *fieldError) {
		if f.path == path {
			found = append(found, f)
		}
	})
	return found
}

// walkFields calls fn for every field error carried by err. The cause of a
// field error is not searched.
func walkFields(err error, fn func(*fieldError)) {
	for !isNilErr(err) {
		switch e := err.(type) {
		case *fieldError:
			fn(e)
			return
		case unpacker:
			for _, member := range e.Unpack() {
				walkFields(member, fn)
			}
			return
		case causer:
			err = e.Cause()
		default:
			return
		}
	}
}
