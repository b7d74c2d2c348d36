package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"", environment.Development},
		{"dev", environment.Development},
		{" Development ", environment.Development},
		{"stage", environment.Staging},
		{"staging", environment.Staging},
		{"PROD", environment.Production},
		{"production", environment.Production},
		{"test", environment.Test},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := environment.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, err := environment.Parse("qa")
		assert.ErrorIs(t, err, environment.ErrUnknownEnvironment)
	})
}

func TestEnvironment_UnmarshalText(t *testing.T) {
	t.Parallel()

	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("prod")))
	assert.Equal(t, environment.Production, env)
	assert.True(t, env.IsProduction())

	assert.Error(t, env.UnmarshalText([]byte("nope")))
	assert.Equal(t, environment.Production, env, "failed parse keeps the previous value")
}
