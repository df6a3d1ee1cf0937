package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromBytesPlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(".txt", []byte("plain resume text"))
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestExtractTextFromBytesMarkdown(t *testing.T) {
	input := "# Experience\n**Acme Corp** built *many* things, see [site](https://acme.example) and `make`."

	text, err := ExtractTextFromBytes("md", []byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Experience\nAcme Corp built many things, see site and make.", text)
}

func TestExtractTextFromBytesMarkdownCodeBlock(t *testing.T) {
	input := "Before\n```\nsecret config\n```\nAfter"

	text, err := ExtractTextFromBytes("md", []byte(input))
	require.NoError(t, err)
	assert.NotContains(t, text, "secret config")
	assert.Contains(t, text, "Before")
	assert.Contains(t, text, "After")
}

func TestExtractTextFromBytesUnsupportedFormat(t *testing.T) {
	_, err := ExtractTextFromBytes(".odt", []byte("whatever"))
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "odt", formatErr.Ext)
}

func TestExtractTextDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("from disk"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "from disk", text)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
