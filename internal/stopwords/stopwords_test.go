package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/panlexicon/internal/testutil"
)

func TestEnglish(t *testing.T) {
	s := English()

	assert.Len(t, s, 179)
	for _, w := range []string{"the", "and", "don't", "wouldn't", "i"} {
		assert.Contains(t, s, w)
	}
	assert.NotContains(t, s, "The")
	assert.NotContains(t, s, "house")
}

func TestEnglish_ReturnsCopy(t *testing.T) {
	s := English()
	delete(s, "the")

	assert.Contains(t, English(), "the")
}

func TestLoad(t *testing.T) {
	path := testutil.CreateWordList(t, t.TempDir(), "der", " die ", "", "das")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	assert.Contains(t, s, "die")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/stopwords.txt")
	assert.Error(t, err)
}
