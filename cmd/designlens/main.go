package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"designlens/internal/analyze"
	"designlens/internal/artifact"
	"designlens/internal/config"
	"designlens/internal/figma"
	"designlens/internal/llmclient"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(analyze.ExitCode(err))
}

type options struct {
	fileKey string
	nodeID  string
	out     string
	model   string
	check   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "designlens",
		Short: "Figma UI/UX and accessibility analysis with Gemini",
		Long: `designlens fetches one Figma node, reduces it to the attributes that matter
for accessibility and consistency review, asks Gemini for an analysis and
writes the answer as a Markdown report.

Requires FIGMA_ACCESS_TOKEN and GEMINI_API_KEY in the environment or .env.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.check {
				return runCheck(cmd, opts)
			}
			return run(cmd, opts)
		},
	}
	f := root.Flags()
	f.StringVar(&opts.fileKey, "file-key", "", "Figma file key (default $FIGMA_FILE_KEY)")
	f.StringVar(&opts.nodeID, "node-id", "", "node id such as 1:1099 (default $FIGMA_NODE_ID)")
	f.StringVar(&opts.out, "out", "", "report path (default $REPORT_PATH or report.md)")
	f.StringVar(&opts.model, "model", "", "Gemini model id (default $GEMINI_MODEL or "+llmclient.DefaultGeminiModel+")")
	f.BoolVar(&opts.check, "check", false, "validate flags only and exit, without secrets or network (CI)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	return root
}

// runCheck is the CI smoke mode: it never touches secrets or the network.
func runCheck(cmd *cobra.Command, opts options) error {
	if opts.nodeID != "" {
		if err := figma.ValidateNodeID(opts.nodeID); err != nil {
			return &analyze.Error{Kind: analyze.KindInputValidation, Op: "validate node id", Err: err}
		}
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "check ok")
	return nil
}

func run(cmd *cobra.Command, opts options) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "=== designlens: Figma UI/UX analysis ===")

	cfg, err := config.Load()
	if err != nil {
		return analyze.ConfigError(err)
	}

	logger, err := newLogger(cfg.LogLevel, opts.verbose)
	if err != nil {
		return analyze.ConfigError(err)
	}
	defer func() { _ = logger.Sync() }()

	req, err := resolveRequest(cmd.InOrStdin(), out, opts, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner, cleanup, err := buildRunner(ctx, cfg, opts, logger)
	if err != nil {
		return err
	}
	defer cleanup()
	runner.Out = out

	res, err := runner.Run(ctx, req)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Report written: %s (%d bytes, %d nodes analysed)\n", reportPath(cfg, opts), res.ReportBytes, res.NodeCount)
	return nil
}

func buildRunner(ctx context.Context, cfg *config.Config, opts options, logger *zap.Logger) (*analyze.Runner, func(), error) {
	model := cfg.GeminiModel
	if opts.model != "" {
		model = opts.model
	}
	gemini, err := llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey, model, cfg.TokenCapacity)
	if err != nil {
		return nil, nil, &analyze.Error{Kind: analyze.KindModelInvocation, Op: "init gemini client", Err: err}
	}
	llm := llmclient.Wrap(gemini,
		llmclient.WithLogging(logger),
		llmclient.WithTokenBudgetWarning(logger),
	)

	file, err := artifact.NewFileStore(reportPath(cfg, opts))
	if err != nil {
		return nil, nil, analyze.ConfigError(err)
	}
	stores := artifact.Tee{file}
	if cfg.Mirror.Enabled {
		s3, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Mirror.Endpoint,
			Region:    cfg.Mirror.Region,
			AccessKey: cfg.Mirror.AccessKey,
			SecretKey: cfg.Mirror.SecretKey,
			Bucket:    cfg.Mirror.Bucket,
			Prefix:    cfg.Mirror.Prefix,
			UseSSL:    cfg.Mirror.UseSSL,
		})
		if err != nil {
			return nil, nil, analyze.ConfigError(err)
		}
		stores = append(stores, s3)
	}

	runner := &analyze.Runner{
		Design: figma.NewClient(cfg.FigmaToken,
			figma.WithBaseURL(cfg.FigmaBaseURL),
			figma.WithLogger(logger.Named("figma")),
		),
		Model:  llm,
		Report: stores,
		Log:    logger,
	}
	return runner, func() { _ = llm.Close() }, nil
}

func reportPath(cfg *config.Config, opts options) string {
	if opts.out != "" {
		return opts.out
	}
	return cfg.ReportPath
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
