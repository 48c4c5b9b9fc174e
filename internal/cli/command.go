package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/panlexicon/internal"
)

// Workflow runs a subcommand once its flags are loaded and validated.
type Workflow func(ctx context.Context, flags *Flags) error

// CreateRootCommand creates and configures the root cobra command with the
// list and embeddings subcommands.
func CreateRootCommand(flags *Flags, list, embeddings Workflow) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "panlexicon",
		Short: "Bilingual lexicon builder backed by PanLex",
		Long: `panlexicon builds bilingual lexicons by querying the PanLex translation API.

A lexicon is induced either from a word list or from the vocabularies of two
pretrained word2vec-style embedding files.

Examples:
  panlexicon list --list words.txt --src eng --trg deu
  panlexicon list --list words.txt --src eng --trg deu --k 3 --inline
  panlexicon embeddings wiki.en.vec wiki.de.vec eng deu en-de.txt -N 5000`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupPersistentFlags(rootCmd, flags)
	rootCmd.AddCommand(createListCommand(flags, list))
	rootCmd.AddCommand(createEmbeddingsCommand(flags, embeddings))

	return rootCmd
}

func createListCommand(flags *Flags, run Workflow) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build a lexicon from a word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfig(flags)
			applyListConfig(flags)
			if err := flags.ValidateList(); err != nil {
				return err
			}
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.ListPath, "list", "", "Word list file (one word per line)")
	cmd.Flags().StringVar(&flags.SrcISO, "src", "", "ISO 639-3 code of the source language")
	cmd.Flags().StringVar(&flags.TrgISO, "trg", "", "ISO 639-3 code of the target language")
	cmd.Flags().IntVar(&flags.TopK, "k", flags.TopK, "Number of best translations kept per word")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default is <src>2<trg>.txt)")
	cmd.Flags().BoolVar(&flags.Inline, "inline", false, "Write all translations of a word on one line")
	cmd.Flags().IntVar(&flags.ListBatchSize, "batch-size", flags.ListBatchSize, "Words per PanLex request")

	bindFlagsToViper(cmd.Flags(), map[string]string{
		"list.path":       "list",
		"list.src":        "src",
		"list.trg":        "trg",
		"list.top_k":      "k",
		"list.output":     "output",
		"list.inline":     "inline",
		"list.batch_size": "batch-size",
	})

	return cmd
}

func createEmbeddingsCommand(flags *Flags, run Workflow) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embeddings SRC_EMB TRG_EMB SRC_ISO TRG_ISO OUTPUT",
		Short: "Build a training dictionary from two embedding vocabularies",
		Long: `Build a one-to-one training dictionary from the vocabularies of two
word2vec-style text embedding files. Pairs whose source or target is not part
of the respective vocabulary are dropped.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfig(flags)
			applyEmbeddingsConfig(flags)
			flags.SrcEmb, flags.TrgEmb = args[0], args[1]
			flags.SrcISO, flags.TrgISO = args[2], args[3]
			flags.Output = args[4]
			if err := flags.ValidateEmbeddings(); err != nil {
				return err
			}
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().IntVarP(&flags.MaxPairs, "max-pairs", "N", flags.MaxPairs, "Maximum number of pairs to store, -1 for all found")
	cmd.Flags().IntVar(&flags.EmbeddingsBatchSize, "batch-size", flags.EmbeddingsBatchSize, "Source tokens per induction batch")
	cmd.Flags().BoolVar(&flags.FilterStopwords, "filter-stopwords", false, "Drop pairs whose source is an English stopword")
	cmd.Flags().StringVar(&flags.StopwordsFile, "stopwords-file", "", "Custom stopword list used with --filter-stopwords")
	cmd.Flags().IntVar(&flags.MinCharLen, "min-char-len", 0, "Drop pairs whose source has at most this many characters")
	cmd.Flags().IntVar(&flags.TopTokens, "top-tokens", flags.TopTokens, "Tokens read from each embedding file")
	cmd.Flags().IntVar(&flags.MaxConsecutiveFailures, "max-consecutive-failures", 0, "Abort after this many failed batches in a row (0 disables)")

	bindFlagsToViper(cmd.Flags(), map[string]string{
		"embeddings.max_pairs":                "max-pairs",
		"embeddings.batch_size":               "batch-size",
		"embeddings.filter_stopwords":         "filter-stopwords",
		"embeddings.stopwords_file":           "stopwords-file",
		"embeddings.min_char_len":             "min-char-len",
		"embeddings.top_tokens":               "top-tokens",
		"embeddings.max_consecutive_failures": "max-consecutive-failures",
	})

	return cmd
}

func setupPersistentFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.panlexicon.yaml)")

	// Logging flags
	pf.StringVar(&flags.LogFile, "log", flags.LogFile, "Store the induction log at this path (empty disables)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")
	pf.BoolVar(&flags.Warnings, "warnings", false, "Log every word or pair that could not be resolved")

	// Query flags
	pf.IntVar(&flags.MinQuality, "qual", flags.MinQuality, "Lower bound of translation quality (5-15 for distant, about 50 for close languages)")
	pf.DurationVar(&flags.ResolveTimeout, "timeout-idx", flags.ResolveTimeout, "Timeout of expression lookup requests")
	pf.DurationVar(&flags.TranslateTimeout, "timeout-trans", flags.TranslateTimeout, "Timeout of translation requests")
	pf.DurationVar(&flags.RequestDelay, "request-delay", flags.RequestDelay, "Delay between successive PanLex requests")
	pf.StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "PanLex API base URL")

	pf.StringVar(&flags.Separator, "separator", flags.Separator, "Separator between source and target words")

	bindFlagsToViper(pf, map[string]string{
		"log.file":            "log",
		"log.level":           "log-level",
		"log.format":          "log-format",
		"log.warnings":        "warnings",
		"query.min_quality":   "qual",
		"query.timeout_idx":   "timeout-idx",
		"query.timeout_trans": "timeout-trans",
		"query.request_delay": "request-delay",
		"query.base_url":      "base-url",
		"output.separator":    "separator",
	})
}

// bindFlagsToViper binds viper keys to the named flags of fs.
func bindFlagsToViper(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		viper.BindPFlag(key, fs.Lookup(name))
	}
}

// applyConfig copies the shared settings from viper, which resolves flags,
// environment and config file in that order, into flags.
func applyConfig(flags *Flags) {
	flags.LogFile = viper.GetString("log.file")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogFormat = viper.GetString("log.format")
	flags.Warnings = viper.GetBool("log.warnings")
	flags.MinQuality = viper.GetInt("query.min_quality")
	flags.ResolveTimeout = viper.GetDuration("query.timeout_idx")
	flags.TranslateTimeout = viper.GetDuration("query.timeout_trans")
	flags.RequestDelay = viper.GetDuration("query.request_delay")
	flags.BaseURL = viper.GetString("query.base_url")
	flags.Separator = viper.GetString("output.separator")
}

func applyListConfig(flags *Flags) {
	flags.ListPath = viper.GetString("list.path")
	flags.SrcISO = viper.GetString("list.src")
	flags.TrgISO = viper.GetString("list.trg")
	flags.TopK = viper.GetInt("list.top_k")
	flags.Output = viper.GetString("list.output")
	flags.Inline = viper.GetBool("list.inline")
	flags.ListBatchSize = viper.GetInt("list.batch_size")
}

func applyEmbeddingsConfig(flags *Flags) {
	flags.MaxPairs = viper.GetInt("embeddings.max_pairs")
	flags.EmbeddingsBatchSize = viper.GetInt("embeddings.batch_size")
	flags.FilterStopwords = viper.GetBool("embeddings.filter_stopwords")
	flags.StopwordsFile = viper.GetString("embeddings.stopwords_file")
	flags.MinCharLen = viper.GetInt("embeddings.min_char_len")
	flags.TopTokens = viper.GetInt("embeddings.top_tokens")
	flags.MaxConsecutiveFailures = viper.GetInt("embeddings.max_consecutive_failures")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home and working directory with name ".panlexicon" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".panlexicon")
	}

	// Environment variables, e.g. PANLEXICON_QUERY_MIN_QUALITY
	viper.SetEnvPrefix("PANLEXICON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
