package embedding

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/panlexicon/internal/testutil"
)

func TestReadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiki.en.vec")
	testutil.CreateEmbeddingFile(t, path, 3, "the", ",", "House", "train")

	got, err := ReadVocabulary(path, ReadOptions{TopTokens: 3, SkipHeader: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", ",", "House"}, got)
}

func TestReadVocabulary_AllTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiki.de.vec")
	testutil.CreateEmbeddingFile(t, path, 2, "der", "Haus")

	got, err := ReadVocabulary(path, ReadOptions{TopTokens: 2, SkipHeader: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"der", "Haus"}, got)
}

func TestReadVocabulary_NoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.vec")
	testutil.CreateTestFile(t, path, []byte("a 0.1 0.2\r\nb 0.3 0.4\r\n"))

	got, err := ReadVocabulary(path, ReadOptions{TopTokens: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestReadVocabulary_TooFewTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.vec")
	testutil.CreateEmbeddingFile(t, path, 2, "a", "b")

	_, err := ReadVocabulary(path, ReadOptions{TopTokens: 5, SkipHeader: true})

	var short *ShortVocabularyError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 5, short.Want)
	assert.Equal(t, 2, short.Got)
}

func TestReadVocabulary_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.vec")
	testutil.CreateTestFile(t, path, nil)

	_, err := ReadVocabulary(path, DefaultReadOptions())

	var short *ShortVocabularyError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 0, short.Got)
}

func TestReadVocabulary_FileNotFound(t *testing.T) {
	_, err := ReadVocabulary("/nonexistent/emb.vec", DefaultReadOptions())
	assert.Error(t, err)
}

func TestReadVocabulary_InvalidTopTokens(t *testing.T) {
	_, err := ReadVocabulary("unused", ReadOptions{TopTokens: 0})
	assert.Error(t, err)
}

func TestDefaultReadOptions(t *testing.T) {
	opts := DefaultReadOptions()
	assert.Equal(t, 50_000, opts.TopTokens)
	assert.True(t, opts.SkipHeader)
}
