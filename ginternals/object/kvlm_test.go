package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKVLMRoundTrip(t *testing.T) {
	t.Parallel()

	raw := []byte("tree deadbeef\n" +
		"parent aaaaaaa\n" +
		"parent bbbbbbb\n" +
		"author John Doe <john@example.com> 1 +0000\n" +
		"\n" +
		"a commit message\n")

	kv, err := parseKVLM(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"aaaaaaa", "bbbbbbb"}, kv.all("parent"))
	treeVal, ok := kv.first("tree")
	require.True(t, ok)
	assert.Equal(t, "deadbeef", treeVal)
	assert.Equal(t, "a commit message\n", kv.message)

	assert.Equal(t, raw, kv.serialize())
}

func TestParseKVLMUnknownKeySurvives(t *testing.T) {
	t.Parallel()

	raw := []byte("tree deadbeef\nauthor a <a@a> 1 +0000\nsomefuturekey some value\n\nmsg\n")
	kv, err := parseKVLM(raw)
	require.NoError(t, err)

	v, ok := kv.first("somefuturekey")
	require.True(t, ok)
	assert.Equal(t, "some value", v)
	assert.Equal(t, raw, kv.serialize())
}

func TestParseKVLMContinuationLines(t *testing.T) {
	t.Parallel()

	raw := []byte("gpgsig -----BEGIN PGP SIGNATURE-----\n" +
		" line one\n" +
		" line two\n" +
		" -----END PGP SIGNATURE-----\n" +
		"\n" +
		"msg\n")

	kv, err := parseKVLM(raw)
	require.NoError(t, err)

	v, ok := kv.first("gpgsig")
	require.True(t, ok)
	expected := "-----BEGIN PGP SIGNATURE-----\n" +
		"line one\n" +
		"line two\n" +
		"-----END PGP SIGNATURE-----"
	assert.Equal(t, expected, v)

	// re-serializing must fold the value back the same way
	assert.Equal(t, raw, kv.serialize())
}

func TestParseKVLMEmptyMessage(t *testing.T) {
	t.Parallel()

	raw := []byte("tree deadbeef\n\n")
	kv, err := parseKVLM(raw)
	require.NoError(t, err)
	assert.Equal(t, "", kv.message)
}

func TestParseKVLMMissingBlankLineFails(t *testing.T) {
	t.Parallel()

	_, err := parseKVLM([]byte("tree deadbeef\n"))
	require.Error(t, err)
}

func TestKVLMSetOverwrites(t *testing.T) {
	t.Parallel()

	kv := newKVLM()
	kv.set("tree", "one")
	kv.set("tree", "two")
	assert.Equal(t, []string{"two"}, kv.all("tree"))
}
