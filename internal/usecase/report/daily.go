package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dealvista/internal/pkg/clock"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/queries"
	"dealvista/internal/usecase/shared"
)

// EmailSender delivers a plain-text message to the given recipients.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type DailyReportService struct {
	reports queries.ReportReadStore
	users   queries.UserReadStore
	uow     shared.UnitOfWork
	sender  EmailSender
	clk     clock.Clock
}

func NewDailyReportService(
	reports queries.ReportReadStore,
	users queries.UserReadStore,
	uow shared.UnitOfWork,
	sender EmailSender,
	clk clock.Clock,
) *DailyReportService {
	return &DailyReportService{
		reports: reports,
		users:   users,
		uow:     uow,
		sender:  sender,
		clk:     clk,
	}
}

// Run compiles the activity counts for the current day and mails them to
// every admin. The reporting window is midnight to now in local time.
func (s *DailyReportService) Run(ctx context.Context) error {
	now := s.clk.Now()
	year, month, day := now.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	counts, err := s.reports.DailyCounts(ctx, from, now)
	if err != nil {
		return errs.Wrap(err, "failed to collect daily counts")
	}

	admins, err := s.users.ListAdmins(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to list admins")
	}
	if len(admins) == 0 {
		slog.Warn("daily report skipped: no admin users")
		return nil
	}

	subject := fmt.Sprintf("Daily activity report %s", now.Format("2006-01-02"))
	body := fmt.Sprintf(
		"Daily activity for %s\n\nNew registrations: %d\nCoupons listed: %d\nCoupons redeemed: %d\n",
		now.Format("2006-01-02"), counts.NewUsers, counts.NewCoupons, counts.Redemptions,
	)

	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, a.Email)
	}

	if err := s.sender.Send(ctx, recipients, subject, body); err != nil {
		return errs.Wrap(err, "failed to send daily report")
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ActivityLogs().Append(ctx, nil,
			fmt.Sprintf("Daily report sent to %d admin(s)", len(recipients)))
	})
	if err != nil {
		return errs.Wrap(err, "failed to record daily report")
	}

	slog.Info("daily report sent", "recipients", len(recipients))
	return nil
}
