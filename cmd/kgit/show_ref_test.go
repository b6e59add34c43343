package main

import (
	"bytes"
	"testing"

	"github.com/kgit-project/kgit/env"
	"github.com/kgit-project/kgit/internal/testhelper"
	"github.com/kgit-project/kgit/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowRefCmd(t *testing.T) {
	t.Parallel()

	dirPath, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	commitID := newFixtureRepo(t, dirPath, "topic")

	stdout := bytes.NewBufferString("")
	err := showRefCmd(stdout, &globalFlags{
		env: env.NewFromKVList([]string{}),
		C:   testhelper.NewStringValue(dirPath),
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), commitID.String())
	assert.Contains(t, stdout.String(), "refs/heads/topic")
}

func TestShowRefCmdFreshInit(t *testing.T) {
	t.Parallel()

	dirPath, cleanup := testhelper.TempDir(t)
	t.Cleanup(cleanup)

	r, err := repository.InitRepository(dirPath)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	stdout := bytes.NewBufferString("")
	err = showRefCmd(stdout, &globalFlags{
		env: env.NewFromKVList([]string{}),
		C:   testhelper.NewStringValue(dirPath),
	})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}
