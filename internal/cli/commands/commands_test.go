package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlbench/internal/cli/config"
)

// setTestConfig pins a deterministic config without latency simulation
// for the duration of a test.
func setTestConfig(t *testing.T) {
	t.Helper()
	config.SetCurrent(&config.Config{
		PageSize:        config.DefaultPageSize,
		HistoryLimit:    config.DefaultHistoryLimit,
		SimulateLatency: false,
		Seed:            42,
		OutputFormat:    config.DefaultOutput,
	})
	t.Cleanup(func() { config.SetCurrent(nil) })
}

// execute runs a command with captured output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewCommandContext(t *testing.T) {
	setTestConfig(t)

	cmdCtx := NewCommandContext()
	require.NotNil(t, cmdCtx.Engine)
	require.NotNil(t, cmdCtx.Store)
	require.Equal(t, 15, cmdCtx.Engine.Catalog().Len())
}
