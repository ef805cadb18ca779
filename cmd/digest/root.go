package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-digest/internal/analyzer"
	"github.com/nguyentantai21042004/caption-digest/internal/config"
	"github.com/nguyentantai21042004/caption-digest/internal/logger"
	"github.com/nguyentantai21042004/caption-digest/internal/model"
	"github.com/nguyentantai21042004/caption-digest/internal/watcher"
	"github.com/nguyentantai21042004/caption-digest/pkg/executor"
)

type options struct {
	output     string
	json       bool
	format     string
	profile    string
	configPath string
	watch      bool
	verbose    bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "digest <subtitle-file>",
		Short: "Summarize a subtitle file into key topics and action items",
		Long: `digest parses an SRT-style subtitle file, picks out key topics and
action items with fixed keyword lists, and prints a short markdown,
JSON, terminal or docx report.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Output JSON instead of markdown")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: markdown, json, text or docx")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Classification profile: topics or attention")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-run the analysis whenever the input file changes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("json", "format")

	return cmd
}

func run(cmd *cobra.Command, inputPath string, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	req, err := buildRequest(cfg, inputPath, opts)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	a := analyzer.New(cfg, executor.New(), log, cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := a.Process(ctx, req); err != nil {
		if !opts.watch {
			return err
		}
		log.Error(ctx, "Initial analysis failed: %v", err)
	}

	if !opts.watch {
		return nil
	}
	return watch(ctx, cfg, log, a, req)
}

// buildRequest merges flags over config. Flags win.
func buildRequest(cfg *config.Config, inputPath string, opts *options) (analyzer.Request, error) {
	formatName := cfg.Output.Format
	if opts.format != "" {
		formatName = opts.format
	}
	if opts.json {
		formatName = string(model.FormatJSON)
	}
	format, err := model.ParseFormat(formatName)
	if err != nil {
		return analyzer.Request{}, err
	}

	profileName := cfg.Analysis.Profile
	if opts.profile != "" {
		profileName = opts.profile
	}
	profile, err := model.ParseProfile(profileName)
	if err != nil {
		return analyzer.Request{}, err
	}

	return analyzer.Request{
		InputPath:  inputPath,
		OutputPath: opts.output,
		Format:     format,
		Profile:    profile,
	}, nil
}

func watch(ctx context.Context, cfg *config.Config, log logger.Logger, a analyzer.Analyzer, req analyzer.Request) error {
	handler := func(ctx context.Context, _ string) error {
		_, err := a.Process(ctx, req)
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watcher.New(req.InputPath, handler, log, debounce)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
