package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/panlexicon/internal/cli"
	"codeberg.org/snonux/panlexicon/internal/logging"
	"codeberg.org/snonux/panlexicon/internal/panlex"
	"codeberg.org/snonux/panlexicon/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command with both workflows
	rootCmd := cli.CreateRootCommand(flags, runList, runEmbeddings)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func runList(ctx context.Context, flags *cli.Flags) error {
	return run(ctx, flags, flags.ListBatchSize, (*processor.Processor).ProcessList)
}

func runEmbeddings(ctx context.Context, flags *cli.Flags) error {
	// One request per batch: the client batch matches the induction batch.
	return run(ctx, flags, flags.EmbeddingsBatchSize, (*processor.Processor).ProcessEmbeddings)
}

func run(ctx context.Context, flags *cli.Flags, batchSize int, workflow func(*processor.Processor, context.Context) error) error {
	logger, closeLog, err := logging.New(logging.Config{
		Level:  flags.LogLevel,
		Format: flags.LogFormat,
		File:   flags.LogFile,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	client := panlex.NewClient(flags.PanLexOptions(batchSize), logger)
	proc := processor.NewProcessor(flags, client, logger)

	if err := workflow(proc, ctx); err != nil {
		logger.ErrorContext(ctx, "run failed", "error", err)
		return err
	}
	return nil
}
