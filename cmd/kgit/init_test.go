package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/kgit-project/kgit/env"
	"github.com/kgit-project/kgit/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd(t *testing.T) {
	t.Parallel()

	dirPath, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	stdout := bytes.NewBufferString("")
	err := initCmd(stdout, initCmdFlags{}, dirPath)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Initialized empty Git repository in")
}

func TestInitCmdIsIdempotent(t *testing.T) {
	t.Parallel()

	dirPath, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	stdout := bytes.NewBufferString("")
	require.NoError(t, initCmd(stdout, initCmdFlags{}, dirPath))

	stdout.Reset()
	require.NoError(t, initCmd(stdout, initCmdFlags{}, dirPath))
	assert.Contains(t, stdout.String(), "Reinitialized existing Git repository in")
}

func TestInitCmdViaCobra(t *testing.T) {
	t.Parallel()

	dirPath, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	cmd := newRootCmd(cwd, env.NewFromOs())
	cmd.SetArgs([]string{"init", "-C", dirPath})

	require.NotPanics(t, func() {
		err = cmd.Execute()
	})
	require.NoError(t, err)
}
