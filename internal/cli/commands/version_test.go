package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"release version", "0.1.0", "sqlbench v0.1.0"},
		{"custom version", "1.2.3", "sqlbench v1.2.3"},
		{"dev version", "dev", "sqlbench vdev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewVersionCommand(tt.version))
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "SQL Query Workbench")
		})
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test")
	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
