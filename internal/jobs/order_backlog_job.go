package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog job at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

// BacklogReader is satisfied by queries.GetOrderBacklogQueryHandler.
type BacklogReader interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.GetOrderBacklogQueryResponse, error)
}

// OrderBacklogJob periodically logs the number of uncompleted orders per channel.
type OrderBacklogJob struct {
	handler  BacklogReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(handler BacklogReader, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start registers the job. An invalid schedule is returned as an error.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run performs a single pass.
func (j *OrderBacklogJob) Run(ctx context.Context) {
	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"eat_in", backlog.EatIn,
		"takeout", backlog.Takeout,
		"delivery", backlog.Delivery,
		"total", backlog.Total(),
	)
}

// Stop waits for a running pass to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
