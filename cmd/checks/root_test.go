package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godouble/godouble/internal/checks"
	"github.com/godouble/godouble/internal/harness"
)

func execute(t *testing.T, checkList []harness.Check, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out, checkList)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, checks.All(), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "person/scripted-collaborator")
	assert.Contains(t, out, "greeting/match-hello")
	assert.Contains(t, out, "check(s) registered")
}

func TestRunCommand_AllPass(t *testing.T) {
	out, err := execute(t, checks.All(), "run", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "PASS:")
}

func TestRunCommand_VerboseListsPassingChecks(t *testing.T) {
	out, err := execute(t, checks.All(), "run", "--no-color", "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "PASS person/set-then-get")
}

func TestRunCommand_FailureYieldsError(t *testing.T) {
	failing := []harness.Check{
		{Name: "always-fails", Fn: func(ct *harness.T) { ct.Errorf("nope") }},
	}

	out, err := execute(t, failing, "run", "--no-color")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "1 check(s) failed")
	assert.Contains(t, out, "FAIL always-fails")
}

func TestRunCommand_FilterFlag(t *testing.T) {
	out, err := execute(t, checks.All(), "run", "--no-color", "-v", "--run", "^greeting/")
	require.NoError(t, err)

	assert.Contains(t, out, "greeting/match-hello")
	assert.NotContains(t, out, "person/set-then-get")
}

func TestRunCommand_InvalidFilter(t *testing.T) {
	_, err := execute(t, checks.All(), "run", "--run", "(unclosed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}
