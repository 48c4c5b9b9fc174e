package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"codeberg.org/snonux/panlexicon/internal/batch"
	"codeberg.org/snonux/panlexicon/internal/cli"
	"codeberg.org/snonux/panlexicon/internal/lexicon"
	"codeberg.org/snonux/panlexicon/internal/panlex"
)

// Translator resolves words to PanLex expressions and fetches their
// translations. *panlex.Client implements it.
type Translator interface {
	ResolveExpressions(ctx context.Context, words []string, srcISO string) (*panlex.Expressions, error)
	FetchTranslations(ctx context.Context, ids []panlex.ExprID, trgISO string, minQuality int) (panlex.Translations, error)
}

// Processor runs the lexicon induction workflows
type Processor struct {
	flags  *cli.Flags
	client Translator
	log    *slog.Logger
	out    io.Writer
}

// NewProcessor creates a processor that queries client with the options in
// flags. A nil logger falls back to slog.Default.
func NewProcessor(flags *cli.Flags, client Translator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		flags:  flags,
		client: client,
		log:    logger.With("component", "processor"),
		out:    os.Stdout,
	}
}

// SetOutput redirects the run summary, which goes to stdout by default.
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// InduceLexicon resolves words in the source language, fetches their
// translations into the target language and keeps the k best per word.
func (p *Processor) InduceLexicon(ctx context.Context, words []string, k int) (*lexicon.Lexicon, error) {
	exprs, err := p.client.ResolveExpressions(ctx, words, p.flags.SrcISO)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve expressions: %w", err)
	}
	p.log.DebugContext(ctx, "expressions resolved", slog.Int("words", len(words)), slog.Int("resolved", exprs.Len()))

	translations, err := p.client.FetchTranslations(ctx, exprs.IDs(), p.flags.TrgISO, p.flags.MinQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch translations: %w", err)
	}

	lex, err := lexicon.Assemble(exprs, lexicon.TopK(translations, k))
	if err != nil {
		return nil, fmt.Errorf("failed to assemble lexicon: %w", err)
	}
	return lex, nil
}

// ProcessList builds a lexicon from the word list and writes it to the
// output file. Any remote failure aborts the run.
func (p *Processor) ProcessList(ctx context.Context) error {
	p.logConfig(ctx, "list")

	words, err := batch.ReadWordList(p.flags.ListPath)
	if err != nil {
		return err
	}
	p.log.InfoContext(ctx, "word list loaded", slog.String("path", p.flags.ListPath), slog.Int("words", len(words)))

	lex, err := p.InduceLexicon(ctx, words, p.flags.TopK)
	if err != nil {
		return err
	}

	missing := missingWords(words, lex)
	if len(missing) > 0 {
		p.log.WarnContext(ctx, "words without translation", slog.Int("missing", len(missing)), slog.Int("words", len(words)))
		if p.flags.Warnings {
			p.log.WarnContext(ctx, "missing words", slog.Any("words", missing))
		}
	}

	output := p.flags.ListOutput()
	opts := lexicon.WriteOptions{Separator: p.flags.Separator, Inline: p.flags.Inline}
	if err := lexicon.WriteFile(output, lex, opts); err != nil {
		return err
	}
	p.log.InfoContext(ctx, "lexicon written", slog.String("path", output), slog.Int("entries", lex.Len()))

	fmt.Fprintf(p.out, "\n=== Lexicon Summary ===\n")
	fmt.Fprintf(p.out, "Words: %d\n", len(words))
	fmt.Fprintf(p.out, "Translated: %d\n", lex.Len())
	if len(missing) > 0 {
		fmt.Fprintf(p.out, "Missing: %d\n", len(missing))
	}
	fmt.Fprintf(p.out, "Output: %s\n", output)
	return nil
}

// missingWords returns the words without an entry in lex, in input order.
func missingWords(words []string, lex *lexicon.Lexicon) []string {
	var missing []string
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		if _, ok := lex.Get(w); !ok {
			missing = append(missing, w)
		}
	}
	return missing
}

func (p *Processor) logConfig(ctx context.Context, mode string) {
	f := p.flags
	attrs := []any{
		slog.String("mode", mode),
		slog.String("src", f.SrcISO),
		slog.String("trg", f.TrgISO),
		slog.Int("qual", f.MinQuality),
		slog.Duration("timeout_idx", f.ResolveTimeout),
		slog.Duration("timeout_trans", f.TranslateTimeout),
		slog.Duration("request_delay", f.RequestDelay),
		slog.String("base_url", f.BaseURL),
		slog.String("log", f.LogFile),
		slog.Bool("warnings", f.Warnings),
	}
	switch mode {
	case "list":
		attrs = append(attrs,
			slog.String("list", f.ListPath),
			slog.Int("k", f.TopK),
			slog.String("output", f.ListOutput()),
			slog.Bool("inline", f.Inline),
			slog.Int("batch_size", f.ListBatchSize),
		)
	case "embeddings":
		attrs = append(attrs,
			slog.String("src_emb", f.SrcEmb),
			slog.String("trg_emb", f.TrgEmb),
			slog.String("output", f.Output),
			slog.Int("max_pairs", f.MaxPairs),
			slog.Int("batch_size", f.EmbeddingsBatchSize),
			slog.Bool("filter_stopwords", f.FilterStopwords),
			slog.String("stopwords_file", f.StopwordsFile),
			slog.Int("min_char_len", f.MinCharLen),
			slog.Int("top_tokens", f.TopTokens),
			slog.Int("max_consecutive_failures", f.MaxConsecutiveFailures),
		)
	}
	p.log.InfoContext(ctx, "configuration", attrs...)
}
