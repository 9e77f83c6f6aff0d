package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/whitelist/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     *errors.Error
		got      error
		wantFail bool
	}{
		"same error":       {want: errors.ErrValidation, got: errors.ErrValidation},
		"wrapped":          {want: errors.ErrValidation, got: errors.Wrap(errors.ErrValidation, "config")},
		"other root error": {want: errors.ErrValidation, got: errors.ErrDecode, wantFail: true},
		"nil error":        {want: errors.ErrValidation, got: nil, wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rec := &recorder{}
			IsErr(rec, tc.want, tc.got)
			if failed := len(rec.failures) > 0; failed != tc.wantFail {
				t.Fatalf("want failure %v, got %q", tc.wantFail, rec.failures)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	twice := errors.Append(
		errors.Field("MinValidSignatures", errors.ErrValidation, "first"),
		errors.Field("MinValidSignatures", errors.ErrValidation, "second"),
	)

	cases := map[string]struct {
		err      error
		path     string
		want     *errors.Error
		wantFail bool
	}{
		"single matching error": {
			err:  errors.Field("SuperAdminKeys.0", errors.ErrDecode, "pem"),
			path: "SuperAdminKeys.0",
			want: errors.ErrDecode,
		},
		"error of another kind": {
			err:      errors.Field("SuperAdminKeys.0", errors.ErrDecode, "pem"),
			path:     "SuperAdminKeys.0",
			want:     errors.ErrValidation,
			wantFail: true,
		},
		"no error expected for another path": {
			err:  errors.Field("SuperAdminKeys.0", errors.ErrDecode, "pem"),
			path: "SuperAdminKeys.1",
		},
		"unexpected error": {
			err:      errors.Field("SuperAdminKeys.0", errors.ErrDecode, "pem"),
			path:     "SuperAdminKeys.0",
			wantFail: true,
		},
		"two errors for one path": {
			err:      twice,
			path:     "MinValidSignatures",
			want:     errors.ErrValidation,
			wantFail: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rec := &recorder{}
			FieldError(rec, tc.err, tc.path, tc.want)
			if failed := len(rec.failures) > 0; failed != tc.wantFail {
				t.Fatalf("want failure %v, got %q", tc.wantFail, rec.failures)
			}
		})
	}
}

func TestNil(t *testing.T) {
	var nilPtr *errors.Error
	var nilMap map[string]string

	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":             {value: nil},
		"typed nil":       {value: nilPtr},
		"nil map":         {value: nilMap},
		"zero int":        {value: 0, wantFail: true},
		"non nil pointer": {value: errors.ErrDecode, wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rec := &recorder{}
			Nil(rec, tc.value)
			if failed := len(rec.failures) > 0; failed != tc.wantFail {
				t.Fatalf("want failure %v, got %q", tc.wantFail, rec.failures)
			}
		})
	}
}

// recorder collects failures instead of stopping the test.
type recorder struct {
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Logf(string, ...interface{}) {}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}
