package whitelist

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/iov-one/whitelist/errors"
	"github.com/iov-one/whitelist/weavetest"
	"github.com/iov-one/whitelist/weavetest/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigValidate(t *testing.T) {
	_, pems := weavetest.SuperAdmins(t, 2)

	cases := map[string]struct {
		conf       Config
		wantFields map[string]*errors.Error
	}{
		"valid": {
			conf: Config{SuperAdminKeys: pems, MinValidSignatures: 2},
		},
		"valid with cache and concurrency": {
			conf: Config{SuperAdminKeys: pems, MinValidSignatures: 1, ContainerCacheSize: 3, BatchConcurrency: 1},
		},
		"no keys": {
			conf: Config{MinValidSignatures: 1},
			wantFields: map[string]*errors.Error{
				"SuperAdminKeys":     errors.ErrValidation,
				"MinValidSignatures": errors.ErrValidation,
			},
		},
		"malformed key": {
			conf: Config{SuperAdminKeys: []string{pems[0], "not a key"}, MinValidSignatures: 1},
			wantFields: map[string]*errors.Error{
				"SuperAdminKeys":   nil,
				"SuperAdminKeys.0": nil,
				"SuperAdminKeys.1": errors.ErrDecode,
			},
		},
		"zero minimum": {
			conf: Config{SuperAdminKeys: pems},
			wantFields: map[string]*errors.Error{
				"MinValidSignatures": errors.ErrValidation,
			},
		},
		"minimum above key count": {
			// A single key may produce several endorsements.
			conf: Config{SuperAdminKeys: pems, MinValidSignatures: 3},
		},
		"negative sizes": {
			conf: Config{SuperAdminKeys: pems, MinValidSignatures: 1, ContainerCacheSize: -1, BatchConcurrency: -2},
			wantFields: map[string]*errors.Error{
				"MinValidSignatures": nil,
				"ContainerCacheSize": errors.ErrValidation,
				"BatchConcurrency":   errors.ErrValidation,
			},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			if len(tc.wantFields) == 0 {
				assert.Nil(t, err)
				return
			}
			for field, want := range tc.wantFields {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	_, pems := weavetest.SuperAdmins(t, 3)
	dir := t.TempDir()

	write := func(name string, raw []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, raw, 0600))
		return path
	}

	asYAML, err := yaml.Marshal(Config{SuperAdminKeys: pems, MinValidSignatures: 2, BatchConcurrency: 4})
	require.NoError(t, err)
	asJSON, err := json.Marshal(Config{SuperAdminKeys: pems, MinValidSignatures: 3})
	require.NoError(t, err)
	invalid, err := yaml.Marshal(Config{SuperAdminKeys: pems})
	require.NoError(t, err)

	cases := map[string]struct {
		path    string
		want    Config
		wantErr *errors.Error
	}{
		"yaml": {
			path: write("conf.yaml", asYAML),
			want: Config{SuperAdminKeys: pems, MinValidSignatures: 2, ContainerCacheSize: DefaultContainerCacheSize, BatchConcurrency: 4},
		},
		"json": {
			path: write("conf.json", asJSON),
			want: Config{SuperAdminKeys: pems, MinValidSignatures: 3, ContainerCacheSize: DefaultContainerCacheSize, BatchConcurrency: DefaultBatchConcurrency},
		},
		"missing file": {
			path:    filepath.Join(dir, "missing.yaml"),
			wantErr: errors.ErrNotFound,
		},
		"malformed file": {
			path:    write("broken.yaml", []byte("superAdminKeys: [")),
			wantErr: errors.ErrDecode,
		},
		"invalid configuration": {
			path:    write("invalid.yaml", invalid),
			wantErr: errors.ErrValidation,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := LoadConfig(tc.path)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
