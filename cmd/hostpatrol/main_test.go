package main

import (
	"io"
	"strings"
	"testing"
)

func TestRootCmdRequiresConfigArg(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() accepted a missing config path")
	}
}

func TestRootCmdMissingConfigFile(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--print", "/does/not/exist.yaml"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() accepted a missing config file")
	}
	if !strings.Contains(err.Error(), "config") {
		t.Errorf("Execute() error = %v, want a config read error", err)
	}
}

func TestRootCmdInvalidConfig(t *testing.T) {
	path := writeTempConfig(t, `
servers:
  - name: "web-1"
    host: "10.0.0.1"
    user: "monitor"
    private_key: "/key"
    checks:
      load:
        interval: 7
`)

	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--print", path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() accepted an invalid configuration")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("Execute() error = %v, want a validation error", err)
	}
}
