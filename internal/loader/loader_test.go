package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clonelens/clonelens/internal/abi"
)

const transferABI = `[
	{"type":"function","name":"transfer","inputs":[{"type":"address"},{"type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"event","name":"Transfer","inputs":[{"type":"address"},{"type":"address"},{"type":"uint256"}]}
]`

func TestParseBareArray(t *testing.T) {
	members, err := Parse([]byte(transferABI))
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, abi.KindFunction, members[0].Kind)
	assert.Equal(t, "transfer", members[0].Name)
	assert.Equal(t, []abi.Input{{Type: "address"}, {Type: "uint256"}}, members[0].Inputs)
	assert.Equal(t, "nonpayable", members[0].StateMutability)
	assert.Equal(t, abi.KindEvent, members[1].Kind)
}

func TestParseABIObject(t *testing.T) {
	members, err := Parse([]byte(`{"abi": ` + transferABI + `}`))
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestParseEtherscanEnvelope(t *testing.T) {
	doc := `{"status":"1","message":"OK","result":"[{\"type\":\"function\",\"name\":\"transfer\",\"inputs\":[]}]"}`
	members, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "transfer", members[0].Name)
}

func TestParseEmptyArray(t *testing.T) {
	members, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = Parse([]byte(`{"abi": []}`))
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestParseKindDefaults(t *testing.T) {
	// Absent type defaults to function; an explicit empty type does not.
	members, err := Parse([]byte(`[{"name":"implicit"},{"type":"","name":"explicit"}]`))
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, abi.KindFunction, members[0].Kind)
	assert.Equal(t, "", members[1].Kind)
}

func TestParseRejectsUnrecognizedShapes(t *testing.T) {
	cases := []string{
		`"just a string"`,
		`42`,
		`{"foo": "bar"}`,
		`{"abi": "not an array"}`,
		`{"result": "not json"}`,
		`{"result": 5}`,
		`not json at all`,
	}
	for _, c := range cases {
		_, err := Parse([]byte(c))
		assert.ErrorIs(t, err, ErrUnrecognizedFormat, "input %s", c)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(path, []byte(transferABI), 0o644))

	iface, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "token.json", iface.Identifier)
	assert.Equal(t, "token", iface.NameHint)
	assert.Len(t, iface.Members, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadFilesFailsFast(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(transferABI), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"nope": true}`), 0o644))

	_, err := LoadFiles([]string{good, bad})
	assert.ErrorIs(t, err, ErrUnrecognizedFormat)

	ifaces, err := LoadFiles([]string{good})
	require.NoError(t, err)
	assert.Len(t, ifaces, 1)
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`[]`), 0o644))
	}

	paths := ExpandPaths([]string{filepath.Join(dir, "*.json")})
	assert.Equal(t, []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, paths)

	// Literal existing file, no glob match needed.
	lit := filepath.Join(dir, "c.txt")
	assert.Equal(t, []string{lit}, ExpandPaths([]string{lit}))

	// Nothing matching, nothing kept.
	assert.Empty(t, ExpandPaths([]string{filepath.Join(dir, "*.xml")}))
	assert.Empty(t, ExpandPaths([]string{dir + "-missing"}))
}
