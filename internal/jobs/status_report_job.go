package jobs

import (
	"context"
	"log/slog"

	"resourceshare/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs the per-status resource counts. It is a
// read-only observer: it never touches the lifecycle, only reports on it.
type StatusReportJob struct {
	handler queries.GetStatusSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusReportJob creates a new job reporting the resource status
// breakdown once a minute.
func NewStatusReportJob(handler queries.GetStatusSummaryQueryHandler, logger *slog.Logger) *StatusReportJob {
	return &StatusReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job, running at the top of every minute.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewGetStatusSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(summary)*2)
		for _, row := range summary {
			attrs = append(attrs, row.Status.String(), row.Count)
		}
		j.logger.InfoContext(ctx, "Resource status summary", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started (running every minute)")
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
