/*
Package assert provides the few assertions used by tests that check
configuration and key parsing errors. Every assertion stops the test on
failure.
*/
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/whitelist/errors"
)

// Tester is the part of testing.TB the assertions use.
type Tester interface {
	Helper()
	Logf(string, ...interface{})
	Fatalf(string, ...interface{})
}

var _ Tester = (testing.TB)(nil)

// Nil fails the test if value is not nil. A typed nil pointer stored in an
// interface is nil as well.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of an error.
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails the test if want and got are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values differ\nwant %T %+v\n got %T %+v", want, want, got, got)
	}
}

// IsErr fails the test unless got is want or wraps it.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if want.Is(got) {
		return
	}
	t.Fatalf("want %q error, got %+v", want, got)
}

// FieldError fails the test unless err carries exactly one error for path
// and that error wraps want. Use a nil want to ensure that no error was
// reported for path.
func FieldError(t Tester, err error, path string, want *errors.Error) {
	t.Helper()

	found := errors.FieldErrors(err, path)
	if want == nil {
		if len(found) != 0 {
			logErrors(t, found)
			t.Fatalf("want no error for %q, got %d", path, len(found))
		}
		return
	}
	if len(found) != 1 {
		logErrors(t, found)
		t.Fatalf("want one error for %q, got %d", path, len(found))
		return
	}
	if !want.Is(found[0]) {
		t.Fatalf("want %q error for %q, got %+v", want, path, found[0])
	}
}

func logErrors(t Tester, errs []error) {
	for i, e := range errs {
		t.Logf("\terror %d: %s", i+1, e)
	}
}
