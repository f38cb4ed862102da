package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hostpatrol/hostpatrol/pkg/check"
	"github.com/hostpatrol/hostpatrol/pkg/config"
	"github.com/hostpatrol/hostpatrol/pkg/evaluate"
	"github.com/hostpatrol/hostpatrol/pkg/notify"
	"github.com/hostpatrol/hostpatrol/pkg/report"
	"github.com/hostpatrol/hostpatrol/pkg/sshx"
)

// webhookEnv names the environment variable carrying the webhook URL.
const webhookEnv = "SLACK_HOOK_URL"

type runOptions struct {
	configPath string
	full       bool
	print      bool
	verbose    bool
	parallel   int
	timeout    time.Duration
}

func run(ctx context.Context, opts runOptions) error {
	// A missing .env is fine; the variable may come from the real env.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))

	logger.Info("loading configuration", slog.String("path", opts.configPath))
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dialer := sshx.NewDialer(opts.timeout, logger)
	runner := check.NewRunner(nil, logger)
	evaluator := evaluate.New(dialer, runner, logger)

	reports := evaluator.EvaluateAll(ctx, cfg.Servers, opts.parallel)
	summary := report.Aggregate(runID, reports)

	if opts.print {
		fmt.Println(summary.Body)
		printSummary(summary)
	}

	if !report.ShouldPost(summary.Failed, opts.full) {
		logger.Info("all checks passed, not posting; use --full to post anyway")
		return nil
	}

	var sink notify.Notifier
	webhook := os.Getenv(webhookEnv)
	switch {
	case webhook != "":
		slack, err := notify.NewSlack(notify.SlackConfig{WebhookURL: webhook}, logger)
		if err != nil {
			return err
		}
		sink = slack
	case opts.print:
		// The report already went to stdout; a missing webhook only
		// downgrades delivery to the log.
		logger.Warn("webhook not configured, logging report instead",
			slog.String("env", webhookEnv),
		)
		sink = notify.NewLogNotifier(logger)
	default:
		return fmt.Errorf("%s environment variable not set", webhookEnv)
	}

	if err := sink.Send(ctx, summary.Body); err != nil {
		if opts.print {
			logger.Error("report delivery failed, report was printed",
				slog.String("error", err.Error()),
			)
			return nil
		}
		return fmt.Errorf("delivering report: %w", err)
	}

	return nil
}
