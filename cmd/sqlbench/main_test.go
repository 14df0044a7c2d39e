// Package main provides tests for the sqlbench CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlbench/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "sqlbench") {
		t.Errorf("version output should contain 'sqlbench', got: %s", output)
	}
}

func TestHelpListsSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help error = %v", err)
	}

	output := buf.String()
	for _, sub := range []string{"serve", "query", "catalog", "export", "version"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help should list %q, got: %s", sub, output)
		}
	}
}
