package processor

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/panlexicon/internal/cli"
	"codeberg.org/snonux/panlexicon/internal/embedding"
	"codeberg.org/snonux/panlexicon/internal/testutil"
)

func embeddingsFake() *testutil.FakePanLex {
	return &testutil.FakePanLex{
		Expressions: map[string]map[string]int64{
			"eng-000": {"the": 10, "House": 1, "train": 2, "cat": 3},
		},
		Translations: map[string]map[int64][]testutil.FakeTranslation{
			"deu-000": {
				10: {{Quality: 50, Txt: "der"}},
				1:  {{Quality: 80, Txt: "Haus"}},
				2:  {{Quality: 60, Txt: "Zug"}, {Quality: 90, Txt: "Bahn"}},
				3:  {{Quality: 70, Txt: "Katze"}},
			},
		},
	}
}

func embeddingsFlags(t *testing.T, batchSize int) *cli.Flags {
	t.Helper()
	dir := t.TempDir()
	flags := cli.NewFlags()
	flags.SrcISO = "eng"
	flags.TrgISO = "deu"
	flags.SrcEmb = filepath.Join(dir, "wiki.en.vec")
	flags.TrgEmb = filepath.Join(dir, "wiki.de.vec")
	flags.Output = filepath.Join(dir, "en-de.txt")
	flags.EmbeddingsBatchSize = batchSize
	flags.TopTokens = 5

	testutil.CreateEmbeddingFile(t, flags.SrcEmb, 3, ",", "the", "House", "train", "cat")
	testutil.CreateEmbeddingFile(t, flags.TrgEmb, 3, "der", "haus", "Bahn", "Zug", "Hund")
	return flags
}

func TestProcessEmbeddings(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	fake := embeddingsFake()
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, nil)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileExists(t, flags.Output)
	// cat has no target in the vocabulary; casing follows the vocabularies.
	testutil.AssertFileContent(t, flags.Output, []byte("the\tder\nHouse\thaus\ntrain\tBahn\n"))

	var resolved [][]string
	for _, r := range fake.Requests() {
		if r.TransExpr == nil {
			resolved = append(resolved, r.Txt)
		}
	}
	assert.Equal(t, [][]string{{"the", "House"}, {"train", "cat"}}, resolved)
}

func TestProcessEmbeddings_FilterStopwords(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.FilterStopwords = true
	p := newTestProcessor(t, flags, embeddingsFake(), flags.EmbeddingsBatchSize, nil)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileContent(t, flags.Output, []byte("House\thaus\ntrain\tBahn\n"))
}

func TestProcessEmbeddings_StopwordsFile(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.FilterStopwords = true
	flags.StopwordsFile = testutil.CreateWordList(t, t.TempDir(), "train")
	p := newTestProcessor(t, flags, embeddingsFake(), flags.EmbeddingsBatchSize, nil)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileContent(t, flags.Output, []byte("the\tder\nHouse\thaus\n"))
}

func TestProcessEmbeddings_MinCharLen(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.MinCharLen = 3
	p := newTestProcessor(t, flags, embeddingsFake(), flags.EmbeddingsBatchSize, nil)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileContent(t, flags.Output, []byte("House\thaus\ntrain\tBahn\n"))
}

func TestProcessEmbeddings_NonEnglishStopwordWarning(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.FilterStopwords = true
	flags.SrcISO = "fra"
	fake := embeddingsFake()
	fake.Expressions["fra-000"] = fake.Expressions["eng-000"]
	var logs bytes.Buffer
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, &logs)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	assert.Contains(t, logs.String(), "non-english source")
	testutil.AssertFileContent(t, flags.Output, []byte("House\thaus\ntrain\tBahn\n"))
}

func TestProcessEmbeddings_MaxPairs(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.MaxPairs = 1
	fake := embeddingsFake()
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, nil)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileContent(t, flags.Output, []byte("the\tder\n"))
	// The second batch is never requested.
	assert.Len(t, fake.Requests(), 2)
}

func TestProcessEmbeddings_SkipsFailedBatch(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	fake := embeddingsFake()
	fake.FailWords = map[string]bool{"the": true}
	var logs bytes.Buffer
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, &logs)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileContent(t, flags.Output, []byte("train\tBahn\n"))
	assert.Contains(t, logs.String(), "skipping batch")
}

func TestProcessEmbeddings_AllBatchesFailed(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	fake := embeddingsFake()
	fake.FailWords = map[string]bool{"the": true, "train": true}
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, nil)

	err := p.ProcessEmbeddings(context.Background())

	assert.ErrorIs(t, err, ErrAllBatchesFailed)
	testutil.AssertFileNotExists(t, flags.Output)
}

func TestProcessEmbeddings_ConsecutiveFailureGuard(t *testing.T) {
	flags := embeddingsFlags(t, 1)
	flags.MaxConsecutiveFailures = 2
	fake := embeddingsFake()
	fake.FailWords = map[string]bool{"the": true, "House": true}
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, nil)

	err := p.ProcessEmbeddings(context.Background())

	assert.ErrorIs(t, err, ErrTooManyFailures)
	assert.Len(t, fake.Requests(), 2)
	testutil.AssertFileNotExists(t, flags.Output)
}

func TestProcessEmbeddings_GuardResetsOnSuccess(t *testing.T) {
	flags := embeddingsFlags(t, 1)
	flags.MaxConsecutiveFailures = 2
	fake := embeddingsFake()
	fake.FailWords = map[string]bool{"the": true, "train": true}
	p := newTestProcessor(t, flags, fake, flags.EmbeddingsBatchSize, nil)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	testutil.AssertFileContent(t, flags.Output, []byte("House\thaus\n"))
}

func TestProcessEmbeddings_ShortVocabulary(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.TopTokens = 10
	p := newTestProcessor(t, flags, embeddingsFake(), flags.EmbeddingsBatchSize, nil)

	err := p.ProcessEmbeddings(context.Background())

	var short *embedding.ShortVocabularyError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 10, short.Want)
	assert.Equal(t, 5, short.Got)
}

func TestProcessEmbeddings_Canceled(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	p := newTestProcessor(t, flags, embeddingsFake(), flags.EmbeddingsBatchSize, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.ProcessEmbeddings(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProcessEmbeddings_WarnsOnVocabularyMiss(t *testing.T) {
	flags := embeddingsFlags(t, 2)
	flags.Warnings = true
	var logs bytes.Buffer
	p := newTestProcessor(t, flags, embeddingsFake(), flags.EmbeddingsBatchSize, &logs)

	require.NoError(t, p.ProcessEmbeddings(context.Background()))

	assert.True(t, strings.Contains(logs.String(), "pair not in vocabularies"))
	assert.Contains(t, logs.String(), "trg=Katze")
	assert.Contains(t, logs.String(), "src_keys=5")
}
