package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdateTargets(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *UpdateTargets
		wantErr bool
	}{
		{"Empty", "", &UpdateTargets{Mode: UpdateAll}, false},
		{"All", "all", &UpdateTargets{Mode: UpdateAll}, false},
		{"Named", "app,shared", &UpdateTargets{Mode: UpdateNamed, Names: []string{"app", "shared"}}, false},
		{"NamedWithSpaces", " app , shared ", &UpdateTargets{Mode: UpdateNamed, Names: []string{"app", "shared"}}, false},
		{"Paths", "app=.,shared=../shared", &UpdateTargets{
			Mode:  UpdatePaths,
			Paths: map[string]string{"app": ".", "shared": "../shared"},
		}, false},
		{"MixedFormsRejected", "app,shared=../shared", nil, true},
		{"EmptyPath", "app=", nil, true},
		{"OnlyCommas", ",,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUpdateTargets(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
