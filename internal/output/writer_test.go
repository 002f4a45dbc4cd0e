package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binding-generator/environment"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "sample.ACC.xml", FileName("sample", environment.Acceptance))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bindings")

	err := WriteFiles([]GeneratedFile{
		{Filename: "a.DEV.xml", Content: []byte("<BindingInfo />")},
		{Filename: "b.DEV.xml", Content: []byte("<BindingInfo></BindingInfo>")},
	}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a.DEV.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<BindingInfo />", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFiles_Overwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.DEV.xml"), []byte("old"), filePerm))

	require.NoError(t, WriteFiles([]GeneratedFile{{Filename: "a.DEV.xml", Content: []byte("new")}}, dir))

	data, err := os.ReadFile(filepath.Join(dir, "a.DEV.xml"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
