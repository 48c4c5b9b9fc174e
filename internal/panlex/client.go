package panlex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"codeberg.org/snonux/panlexicon/internal/batch"
)

const (
	// DefaultBaseURL is the PanLex v2 API root.
	DefaultBaseURL = "http://api.panlex.org/v2"

	DefaultBatchSize        = 200
	DefaultResolveTimeout   = 5 * time.Second
	DefaultTranslateTimeout = 30 * time.Second
	DefaultRequestDelay     = 500 * time.Millisecond

	exprEndpoint = "/expr"
	maxErrorBody = 512
)

// Options configures a Client. Zero values fall back to the defaults above,
// except RequestDelay where zero disables pacing.
type Options struct {
	BaseURL          string
	BatchSize        int
	ResolveTimeout   time.Duration
	TranslateTimeout time.Duration
	RequestDelay     time.Duration
	HTTPClient       *http.Client
}

// DefaultOptions returns the options matching PanLex's published limits.
func DefaultOptions() Options {
	return Options{
		BaseURL:          DefaultBaseURL,
		BatchSize:        DefaultBatchSize,
		ResolveTimeout:   DefaultResolveTimeout,
		TranslateTimeout: DefaultTranslateTimeout,
		RequestDelay:     DefaultRequestDelay,
	}
}

// Client talks to the PanLex API. It is not safe for concurrent use; all
// requests of one run go through a single pacer.
type Client struct {
	baseURL          string
	batchSize        int
	resolveTimeout   time.Duration
	translateTimeout time.Duration
	httpClient       *http.Client
	pacer            *pacer
	log              *slog.Logger
}

// NewClient creates a PanLex client.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.ResolveTimeout <= 0 {
		opts.ResolveTimeout = DefaultResolveTimeout
	}
	if opts.TranslateTimeout <= 0 {
		opts.TranslateTimeout = DefaultTranslateTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:          strings.TrimRight(opts.BaseURL, "/"),
		batchSize:        opts.BatchSize,
		resolveTimeout:   opts.ResolveTimeout,
		translateTimeout: opts.TranslateTimeout,
		httpClient:       opts.HTTPClient,
		pacer:            newPacer(opts.RequestDelay),
		log:              logger.With("component", "panlex"),
	}
}

// ResolveExpressions fetches the expression ids of words in language srcISO.
// A failed batch aborts the call with a *RemoteRequestError; batches already
// resolved are discarded.
func (c *Client) ResolveExpressions(ctx context.Context, words []string, srcISO string) (*Expressions, error) {
	uid := LangVariety(srcISO)
	out := &Expressions{}
	total := batch.Count(len(words), c.batchSize)

	i := 0
	for chunk := range batch.Split(words, c.batchSize) {
		i++
		for _, w := range chunk {
			if !utf8.ValidString(w) {
				return nil, &EncodingError{Word: w}
			}
		}

		var resp exprResponse
		req := exprRequest{Txt: chunk, UID: uid}
		if err := c.post(ctx, "resolve", c.resolveTimeout, req, &resp); err != nil {
			return nil, err
		}
		for _, r := range resp.Result {
			out.Add(r.ID, r.Txt)
		}

		c.log.InfoContext(ctx, "expression batch processed",
			slog.Int("batch", i),
			slog.Int("of", total),
			slog.Int("resolved", len(resp.Result)),
		)
	}

	return out, nil
}

// FetchTranslations fetches translations into language trgISO for ids with a
// translation quality of at least minQuality.
func (c *Client) FetchTranslations(ctx context.Context, ids []ExprID, trgISO string, minQuality int) (Translations, error) {
	uid := LangVariety(trgISO)
	out := make(Translations)
	total := batch.Count(len(ids), c.batchSize)

	i := 0
	for chunk := range batch.Split(ids, c.batchSize) {
		i++

		var resp translationResponse
		req := translationRequest{
			Include:         "trans_quality",
			TransExpr:       chunk,
			UID:             uid,
			TransQualityMin: minQuality,
		}
		if err := c.post(ctx, "translate", c.translateTimeout, req, &resp); err != nil {
			return nil, err
		}
		for _, r := range resp.Result {
			out.Add(r.TransExpr, r.TransQuality, r.Txt)
		}

		c.log.InfoContext(ctx, "translation batch processed",
			slog.Int("batch", i),
			slog.Int("of", total),
			slog.Int("translations", len(resp.Result)),
		)
	}

	return out, nil
}

// post sends payload as JSON to the expr endpoint and decodes the reply into out.
func (c *Client) post(ctx context.Context, op string, timeout time.Duration, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("panlex %s: encode request: %w", op, err)
	}

	if err := c.pacer.wait(ctx); err != nil {
		return &RemoteRequestError{Op: op, Err: err}
	}
	defer c.pacer.done()

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+exprEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("panlex %s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "panlex request", slog.String("op", op), slog.Int("bytes", len(body)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteRequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RemoteRequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteRequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}
