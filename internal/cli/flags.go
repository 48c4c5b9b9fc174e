package cli

import (
	"errors"
	"fmt"
	"time"

	"codeberg.org/snonux/panlexicon/internal"
	"codeberg.org/snonux/panlexicon/internal/embedding"
	"codeberg.org/snonux/panlexicon/internal/lexicon"
	"codeberg.org/snonux/panlexicon/internal/logging"
	"codeberg.org/snonux/panlexicon/internal/panlex"
)

// Default values for flags that differ per workflow.
const (
	DefaultListBatchSize       = 200
	DefaultEmbeddingsBatchSize = 1000
	DefaultMinQuality          = 5
	DefaultLogFile             = "./debug.txt"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	LogFile   string
	LogLevel  string
	LogFormat string
	Warnings  bool
	Separator string

	// Query flags
	MinQuality       int
	ResolveTimeout   time.Duration
	TranslateTimeout time.Duration
	RequestDelay     time.Duration
	BaseURL          string

	// Shared by both workflows
	SrcISO string
	TrgISO string
	Output string

	// List workflow flags
	ListPath      string
	TopK          int
	Inline        bool
	ListBatchSize int

	// Embeddings workflow flags
	SrcEmb                 string
	TrgEmb                 string
	MaxPairs               int
	EmbeddingsBatchSize    int
	FilterStopwords        bool
	StopwordsFile          string
	MinCharLen             int
	TopTokens              int
	MaxConsecutiveFailures int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogFile:             DefaultLogFile,
		LogLevel:            "info",
		LogFormat:           "text",
		Separator:           lexicon.DefaultSeparator,
		MinQuality:          DefaultMinQuality,
		ResolveTimeout:      panlex.DefaultResolveTimeout,
		TranslateTimeout:    panlex.DefaultTranslateTimeout,
		RequestDelay:        panlex.DefaultRequestDelay,
		BaseURL:             panlex.DefaultBaseURL,
		TopK:                1,
		ListBatchSize:       DefaultListBatchSize,
		MaxPairs:            -1,
		EmbeddingsBatchSize: DefaultEmbeddingsBatchSize,
		TopTokens:           embedding.DefaultTopTokens,
	}
}

// Validate checks the options shared by both workflows.
func (f *Flags) Validate() error {
	var errs []error
	if f.SrcISO == "" {
		errs = append(errs, errors.New("source language ISO code is required"))
	}
	if f.TrgISO == "" {
		errs = append(errs, errors.New("target language ISO code is required"))
	}
	if f.MinQuality < 0 {
		errs = append(errs, fmt.Errorf("quality must not be negative, got %d", f.MinQuality))
	}
	if f.RequestDelay < 0 {
		errs = append(errs, fmt.Errorf("request delay must not be negative, got %s", f.RequestDelay))
	}
	if f.Separator == "" {
		errs = append(errs, errors.New("separator must not be empty"))
	}
	if !logging.ValidFormat(f.LogFormat) {
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", f.LogFormat))
	}
	return errors.Join(errs...)
}

// ValidateList checks the options of the list workflow.
func (f *Flags) ValidateList() error {
	errs := []error{f.Validate()}
	if f.ListPath == "" {
		errs = append(errs, errors.New("word list path is required"))
	}
	if f.TopK <= 0 {
		errs = append(errs, fmt.Errorf("k must be positive, got %d", f.TopK))
	}
	if f.ListBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch size must be positive, got %d", f.ListBatchSize))
	}
	return errors.Join(errs...)
}

// ValidateEmbeddings checks the options of the embeddings workflow.
func (f *Flags) ValidateEmbeddings() error {
	errs := []error{f.Validate()}
	if f.SrcEmb == "" || f.TrgEmb == "" {
		errs = append(errs, errors.New("source and target embedding paths are required"))
	}
	if f.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if f.EmbeddingsBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch size must be positive, got %d", f.EmbeddingsBatchSize))
	}
	if f.TopTokens <= 0 {
		errs = append(errs, fmt.Errorf("top tokens must be positive, got %d", f.TopTokens))
	}
	if f.MaxPairs < -1 || f.MaxPairs == 0 {
		errs = append(errs, fmt.Errorf("max pairs must be positive or -1, got %d", f.MaxPairs))
	}
	if f.MinCharLen < 0 {
		errs = append(errs, fmt.Errorf("min char length must not be negative, got %d", f.MinCharLen))
	}
	if f.MaxConsecutiveFailures < 0 {
		errs = append(errs, fmt.Errorf("max consecutive failures must not be negative, got %d", f.MaxConsecutiveFailures))
	}
	return errors.Join(errs...)
}

// ListOutput returns the output path of the list workflow.
func (f *Flags) ListOutput() string {
	if f.Output != "" {
		return f.Output
	}
	return internal.DefaultLexiconName(f.SrcISO, f.TrgISO)
}

// PanLexOptions returns the client options for requests of batchSize words.
func (f *Flags) PanLexOptions(batchSize int) panlex.Options {
	opts := panlex.DefaultOptions()
	if f.BaseURL != "" {
		opts.BaseURL = f.BaseURL
	}
	if batchSize > 0 {
		opts.BatchSize = batchSize
	}
	if f.ResolveTimeout > 0 {
		opts.ResolveTimeout = f.ResolveTimeout
	}
	if f.TranslateTimeout > 0 {
		opts.TranslateTimeout = f.TranslateTimeout
	}
	opts.RequestDelay = f.RequestDelay
	return opts
}
