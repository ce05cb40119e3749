package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"calsum/internal/calendar"
	"calsum/internal/config"
	"calsum/internal/google"
	"calsum/internal/instrumentation"
	"calsum/internal/logging"
	"calsum/internal/summary"
	"calsum/internal/whatsapp"
)

func newSendCmd() *cobra.Command {
	var dryRun, verbose, weeklyOnly bool

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Fetch events, generate a summary and deliver it via WhatsApp",
		Long: `Fetch the next 7 days of calendar events (and a 30-day look-ahead), ask
Claude for a conversational summary, and send it as a WhatsApp message.

With --dry-run the bounded message is echoed to the console instead of
being sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dryRun {
				cfg.DryRun = true
			}
			if verbose {
				cfg.Verbose = true
			}

			logger := logging.Setup(cfg.Verbose)
			slog.SetDefault(logger)

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()

			provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
			if err != nil {
				return fmt.Errorf("failed to initialize instrumentation: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := provider.Shutdown(shutdownCtx); err != nil {
					logger.Warn("failed to flush metrics", logging.Err(err))
				}
			}()

			return runSend(ctx, cfg, weeklyOnly, logger, provider.Metrics())
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate the summary but do not send the WhatsApp message")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&weeklyOnly, "weekly-only", false, "Only include weekly events, skip the monthly look-ahead")
	return cmd
}

// runSend executes one summary run: fetch, build, summarize, deliver.
func runSend(ctx context.Context, cfg config.Config, weeklyOnly bool, logger *slog.Logger, metrics *instrumentation.Metrics) error {
	if cfg.DryRun {
		logger.Info("running in dry-run mode, no WhatsApp message will be sent")
	}

	conf := google.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret)
	calClient, err := calendar.NewClient(ctx, conf, cfg.GoogleTokenPath, cfg.CalendarID)
	if err != nil {
		metrics.RecordRun(ctx, "error")
		return err
	}

	now := time.Now()

	weekly, err := fetchWindow(ctx, logger, metrics, "weekly", func() ([]calendar.Event, error) {
		return calClient.WeeklyEvents(now)
	})
	if err != nil {
		metrics.RecordRun(ctx, "error")
		return err
	}

	var monthly []calendar.Event
	if !weeklyOnly {
		monthly, err = fetchWindow(ctx, logger, metrics, "monthly", func() ([]calendar.Event, error) {
			return calClient.MonthlyEvents(now)
		})
		if err != nil {
			metrics.RecordRun(ctx, "error")
			return err
		}
	}

	if len(weekly) == 0 && len(monthly) == 0 {
		logger.Info("no events found in calendar, nothing to summarize")
		metrics.RecordRun(ctx, "no_events")
		return nil
	}

	payload := summary.Build(weekly, monthly)

	template, usedDefault := summary.LoadPromptTemplate(cfg.PromptTemplatePath)
	if usedDefault {
		logger.Warn("prompt template not found, using built-in default",
			"path", cfg.PromptTemplatePath)
	}

	logger.Debug("generating summary",
		logging.Service("anthropic"),
		"weekly_events", len(weekly),
		"monthly_events", len(monthly))

	summarizer := summary.NewClaudeClient(cfg.AnthropicAPIKey)
	start := time.Now()
	text, err := summarizer.Summarize(ctx, template, payload.CombinedText)
	if err != nil {
		metrics.RecordAPIOperation(ctx, "anthropic", "summarize", instrumentation.StatusError, time.Since(start))
		metrics.RecordRun(ctx, "error")
		return err
	}
	metrics.RecordAPIOperation(ctx, "anthropic", "summarize", instrumentation.StatusSuccess, time.Since(start))

	waClient, err := whatsapp.NewClient(
		cfg.TwilioAccountSID, cfg.TwilioAuthToken,
		cfg.TwilioWhatsAppFrom, cfg.TwilioWhatsAppTo,
		cfg.DryRun)
	if err != nil {
		metrics.RecordRun(ctx, "error")
		return err
	}

	start = time.Now()
	if err := waClient.SendSummary(text); err != nil {
		metrics.RecordAPIOperation(ctx, "twilio", "send", instrumentation.StatusError, time.Since(start))
		metrics.RecordDelivery(ctx, cfg.DryRun, instrumentation.StatusError)
		metrics.RecordRun(ctx, "error")
		return err
	}
	metrics.RecordAPIOperation(ctx, "twilio", "send", instrumentation.StatusSuccess, time.Since(start))
	metrics.RecordDelivery(ctx, cfg.DryRun, instrumentation.StatusSuccess)
	metrics.RecordRun(ctx, "success")

	logger.Info("calendar summary delivered",
		logging.Operation("send"),
		logging.Status(logging.StatusSuccess),
		"dry_run", cfg.DryRun,
		"summary_chars", len(text))
	return nil
}

// fetchWindow fetches and normalizes one event window, recording metrics
// and downgrading malformed-record errors to warnings: a single broken
// record must not abort the run when the rest of the batch is usable.
func fetchWindow(ctx context.Context, logger *slog.Logger, metrics *instrumentation.Metrics, window string, fetch func() ([]calendar.Event, error)) ([]calendar.Event, error) {
	start := time.Now()
	events, err := fetch()
	if err != nil {
		var malformed *calendar.MalformedEventError
		if !errors.As(err, &malformed) {
			metrics.RecordAPIOperation(ctx, "calendar", "list", instrumentation.StatusError, time.Since(start))
			return nil, fmt.Errorf("failed to fetch %s events: %w", window, err)
		}
		logger.Warn("skipped malformed calendar records",
			logging.Service("calendar"),
			"window", window,
			logging.Err(err))
	}
	metrics.RecordAPIOperation(ctx, "calendar", "list", instrumentation.StatusSuccess, time.Since(start))
	metrics.RecordEventsProcessed(ctx, window, len(events))

	logger.Debug("events fetched",
		logging.Service("calendar"),
		"window", window,
		"count", len(events))
	return events, nil
}
