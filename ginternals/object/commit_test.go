package object_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/kgit-project/kgit/ginternals"
	"github.com/kgit-project/kgit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureString(t *testing.T) {
	t.Parallel()

	sig := object.NewSignature("John Doe", "john@domain.tld")
	// force UTC so the test is consistent regardless of the machine
	// running it
	now := time.Now().UTC()
	sig.Time = now

	expect := fmt.Sprintf("John Doe <john@domain.tld> %d +0000", now.Unix())
	assert.Equal(t, expect, sig.String())
}

func TestNewSignatureFromBytes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc          string
		signature     string
		expectError   bool
		expectedName  string
		expectedEmail string
	}{
		{
			desc:          "valid with a negative offset",
			signature:     "Melvin Laplanche <melvin.wont.reply@gmail.com> 1566115917 -0700",
			expectedName:  "Melvin Laplanche",
			expectedEmail: "melvin.wont.reply@gmail.com",
		},
		{
			desc:        "missing email should fail",
			signature:   "Melvin Laplanche",
			expectError: true,
		},
		{
			desc:        "empty signature should fail",
			signature:   "",
			expectError: true,
		},
	}
	for i, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d/%s", i, tc.desc), func(t *testing.T) {
			t.Parallel()

			sig, err := object.NewSignatureFromBytes([]byte(tc.signature))
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, sig.Name)
			assert.Equal(t, tc.expectedEmail, sig.Email)
		})
	}
}

func TestNewCommitRoundTrip(t *testing.T) {
	t.Parallel()

	treeID, err := ginternals.NewOidFromStr("0eaf966ff79d8f61958aaefe163620d952606516")
	require.NoError(t, err)
	parentID, err := ginternals.NewOidFromStr("f7c3bc1d808e04732adf679965ccc34ca7ae3441")
	require.NoError(t, err)

	author := object.NewSignature("Jane Doe", "jane@example.com")
	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message:   "initial commit\n",
		ParentsID: []ginternals.Oid{parentID},
	})

	assert.Equal(t, treeID, c.TreeID())
	assert.Equal(t, []ginternals.Oid{parentID}, c.ParentIDs())
	assert.Equal(t, author.Name, c.Author().Name)
	assert.Equal(t, author, c.Committer(), "committer should default to author")
	assert.Equal(t, "initial commit\n", c.Message())

	// round-trip through the object store representation
	parsed, err := object.NewCommitFromObject(c.ToObject())
	require.NoError(t, err)
	assert.Equal(t, c.TreeID(), parsed.TreeID())
	assert.Equal(t, c.ParentIDs(), parsed.ParentIDs())
	assert.Equal(t, c.Message(), parsed.Message())
	assert.Equal(t, c.ID(), parsed.ID())
}

func TestNewCommitFromObjectMissingTreeFails(t *testing.T) {
	t.Parallel()

	raw := []byte("author A <a@a.com> 1566115917 -0700\n\nmsg\n")
	o := object.New(object.TypeCommit, raw)
	_, err := object.NewCommitFromObject(o)
	require.Error(t, err)
}

func TestNewCommitFromObjectWrongTypeFails(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hello"))
	_, err := object.NewCommitFromObject(o)
	require.Error(t, err)
}

func TestCommitGPGSig(t *testing.T) {
	t.Parallel()

	treeID, err := ginternals.NewOidFromStr("0eaf966ff79d8f61958aaefe163620d952606516")
	require.NoError(t, err)
	author := object.NewSignature("Jane Doe", "jane@example.com")
	sig := "-----BEGIN PGP SIGNATURE-----\nabc\n-----END PGP SIGNATURE-----"
	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message: "msg\n",
		GPGSig:  sig,
	})

	parsed, err := object.NewCommitFromObject(c.ToObject())
	require.NoError(t, err)
	assert.Equal(t, sig, parsed.GPGSig())
}
