package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dealvista/internal/infra/email"
	"dealvista/internal/pkg/config"
	"dealvista/internal/usecase/report"

	"go.uber.org/fx"
)

var ReportModule = fx.Module("report",
	fx.Provide(
		NewEmailSender,
		report.NewDailyReportService,
	),
	fx.Invoke(startDailyReport),
)

func NewEmailSender(cfg config.Config) report.EmailSender {
	return email.NewSender(cfg.Report)
}

// startDailyReport fires the report service once a day at the configured
// local time (default 23:59).
func startDailyReport(lc fx.Lifecycle, cfg config.Config, svc *report.DailyReportService, logger *slog.Logger) error {
	if !cfg.Report.Enabled {
		logger.Info("daily report disabled")
		return nil
	}

	sendAt, err := time.Parse("15:04", cfg.Report.SendAt)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go runDaily(ctx, svc, sendAt.Hour(), sendAt.Minute(), logger)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return nil
}

func runDaily(ctx context.Context, svc *report.DailyReportService, hour, minute int, logger *slog.Logger) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := svc.Run(ctx); err != nil {
			logger.Error("daily report run failed", "error", err)
		}
	}
}
