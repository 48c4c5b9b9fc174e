package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/panlexicon/internal/batch"
	"codeberg.org/snonux/panlexicon/internal/embedding"
	"codeberg.org/snonux/panlexicon/internal/lexicon"
	"codeberg.org/snonux/panlexicon/internal/stopwords"
)

var (
	// ErrAllBatchesFailed is returned when no embeddings batch succeeded.
	ErrAllBatchesFailed = errors.New("all batches failed")
	// ErrTooManyFailures is returned when the consecutive-failure guard trips.
	ErrTooManyFailures = errors.New("too many consecutive batch failures")
)

// BatchResult is the outcome of one embeddings batch.
type BatchResult struct {
	Index int
	Pairs []lexicon.Pair
	Err   error
}

// vocabularies holds both embedding vocabularies and their lookup indexes.
type vocabularies struct {
	src, trg       []string
	srcIdx, trgIdx *embedding.Index
}

// ProcessEmbeddings builds a one-to-one dictionary from the source embedding
// vocabulary and keeps the pairs known to both vocabularies. Failed batches
// are logged and skipped.
func (p *Processor) ProcessEmbeddings(ctx context.Context) error {
	p.logConfig(ctx, "embeddings")

	vocab, err := p.readVocabularies()
	if err != nil {
		return err
	}

	words := batch.CleanSymbols(vocab.src)
	if removed := len(vocab.src) - len(words); removed > 0 {
		p.log.InfoContext(ctx, "symbols removed", slog.Int("removed", removed))
	}

	filter, err := p.filterOptions(ctx)
	if err != nil {
		return err
	}

	breaker := p.newBreaker()
	size := p.flags.EmbeddingsBatchSize
	total := batch.Count(len(words), size)

	var pairs []lexicon.Pair
	attempted, failed := 0, 0
	for chunk := range batch.Split(words, size) {
		res := p.runBatch(ctx, breaker, attempted, chunk, vocab, filter)
		attempted++

		if err := ctx.Err(); err != nil {
			return err
		}
		if res.Err != nil {
			failed++
			p.log.WarnContext(ctx, "skipping batch",
				slog.Int("batch", res.Index),
				slog.Int("of", total),
				slog.Any("error", res.Err),
			)
			if breaker != nil && breaker.State() == gobreaker.StateOpen {
				return fmt.Errorf("%w: %d in a row, last: %w", ErrTooManyFailures, p.flags.MaxConsecutiveFailures, res.Err)
			}
			continue
		}

		pairs = append(pairs, res.Pairs...)
		p.log.InfoContext(ctx, "word translations identified",
			slog.Int("pairs", len(pairs)),
			slog.Int("batch", res.Index),
			slog.Int("of", total),
		)
		if p.flags.MaxPairs != -1 && len(pairs) >= p.flags.MaxPairs {
			break
		}
	}

	if attempted > 0 && failed == attempted {
		return fmt.Errorf("%w: %d of %d", ErrAllBatchesFailed, failed, attempted)
	}
	if p.flags.MaxPairs != -1 && len(pairs) > p.flags.MaxPairs {
		pairs = pairs[:p.flags.MaxPairs]
	}

	if err := lexicon.WritePairsFile(p.flags.Output, pairs, p.flags.Separator); err != nil {
		return err
	}
	p.log.InfoContext(ctx, "dictionary written", slog.String("path", p.flags.Output), slog.Int("pairs", len(pairs)))

	fmt.Fprintf(p.out, "\n=== Dictionary Summary ===\n")
	fmt.Fprintf(p.out, "Batches: %d\n", attempted)
	if failed > 0 {
		fmt.Fprintf(p.out, "Failed batches: %d\n", failed)
	}
	fmt.Fprintf(p.out, "Pairs: %d\n", len(pairs))
	fmt.Fprintf(p.out, "Output: %s\n", p.flags.Output)
	return nil
}

// runBatch induces and post-filters the pairs of one batch, through the
// breaker when one is configured.
func (p *Processor) runBatch(ctx context.Context, breaker *gobreaker.CircuitBreaker, index int, words []string, vocab *vocabularies, filter lexicon.FilterOptions) BatchResult {
	res := BatchResult{Index: index}
	run := func() (interface{}, error) {
		res.Pairs, res.Err = p.inducePairs(ctx, words, vocab, filter)
		return nil, res.Err
	}

	if breaker == nil {
		run()
		return res
	}
	if _, err := breaker.Execute(run); err != nil && res.Err == nil {
		res.Err = err
	}
	return res
}

func (p *Processor) inducePairs(ctx context.Context, words []string, vocab *vocabularies, filter lexicon.FilterOptions) ([]lexicon.Pair, error) {
	lex, err := p.InduceLexicon(ctx, words, 1)
	if err != nil {
		return nil, err
	}

	dict, err := lexicon.NewDictionary(lex)
	if err != nil {
		return nil, err
	}

	pairs := lexicon.Intersect(dict, vocab.srcIdx, vocab.trgIdx, func(miss lexicon.Pair) {
		if p.flags.Warnings {
			p.log.WarnContext(ctx, "pair not in vocabularies", slog.String("src", miss.Source), slog.String("trg", miss.Target))
		}
	})
	return lexicon.FilterPairs(pairs, filter), nil
}

func (p *Processor) readVocabularies() (*vocabularies, error) {
	opts := embedding.DefaultReadOptions()
	opts.TopTokens = p.flags.TopTokens

	src, err := embedding.ReadVocabulary(p.flags.SrcEmb, opts)
	if err != nil {
		return nil, err
	}
	trg, err := embedding.ReadVocabulary(p.flags.TrgEmb, opts)
	if err != nil {
		return nil, err
	}

	vocab := &vocabularies{
		src:    src,
		trg:    trg,
		srcIdx: embedding.NewIndex(src),
		trgIdx: embedding.NewIndex(trg),
	}
	p.log.Info("vocabularies loaded",
		slog.Int("src", len(src)),
		slog.Int("trg", len(trg)),
		slog.Int("src_keys", vocab.srcIdx.Len()),
		slog.Int("trg_keys", vocab.trgIdx.Len()),
	)
	return vocab, nil
}

func (p *Processor) filterOptions(ctx context.Context) (lexicon.FilterOptions, error) {
	opts := lexicon.FilterOptions{MinCharLen: p.flags.MinCharLen}
	if !p.flags.FilterStopwords {
		return opts, nil
	}

	if p.flags.StopwordsFile != "" {
		set, err := stopwords.Load(p.flags.StopwordsFile)
		if err != nil {
			return opts, err
		}
		opts.Stopwords = set
	} else {
		if p.flags.SrcISO != "eng" {
			p.log.WarnContext(ctx, "filtering english stopwords from a non-english source", slog.String("src", p.flags.SrcISO))
		}
		opts.Stopwords = stopwords.English()
	}
	return opts, nil
}

// newBreaker returns nil when the consecutive-failure guard is disabled.
func (p *Processor) newBreaker() *gobreaker.CircuitBreaker {
	limit := p.flags.MaxConsecutiveFailures
	if limit <= 0 {
		return nil
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "embeddings-batches",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(limit)
		},
	})
}
