package main

import (
	"testing"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/object"
	"github.com/kgit-project/kgit/repository"
	"github.com/stretchr/testify/require"
)

// newFixtureRepo initializes a repository at dirPath containing a single
// blob/tree/commit graph and a branch named branchName pointing at the
// commit. It returns the commit's Oid.
func newFixtureRepo(t *testing.T, dirPath, branchName string) ginternals.Oid {
	t.Helper()

	r, err := repository.InitRepository(dirPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	blob := object.New(object.TypeBlob, []byte("hello\n"))
	blobID, err := r.WriteObject(blob)
	require.NoError(t, err)

	tree := object.NewTree([]object.TreeEntry{
		{Path: "hello.txt", ID: blobID, Mode: object.ModeFile},
	})
	treeID, err := r.WriteObject(tree.ToObject())
	require.NoError(t, err)

	author := object.NewSignature("Ada Lovelace", "ada@example.com")
	commit := object.NewCommit(treeID, author, &object.CommitOptions{
		Message: "initial commit\n",
	})
	commitID, err := r.WriteObject(commit.ToObject())
	require.NoError(t, err)

	require.NoError(t, r.WriteReference(ginternals.NewReference(
		ginternals.LocalBranchFullName(branchName), commitID,
	)))

	return commitID
}
