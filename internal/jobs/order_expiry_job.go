package jobs

import (
	"context"
	"time"

	"workmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultExpirySchedule runs the expiry every five minutes. Schedules include
// a seconds field.
const DefaultExpirySchedule = "0 */5 * * * *"

const maxBatchesPerRun = 20

// ExpireOrdersHandler is satisfied by commands.ExpireOrdersCommandHandler.
type ExpireOrdersHandler interface {
	Handle(ctx context.Context, command commands.ExpireOrdersCommand) (int, error)
}

// OrderExpiryJob unpublishes open orders whose deadline has passed.
// A run drains expired orders batch by batch; runs never overlap.
type OrderExpiryJob struct {
	handler  ExpireOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewOrderExpiryJob(handler ExpireOrdersHandler, schedule string, logger *zap.Logger) *OrderExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}
	logger = logger.With(zap.String("component", "order_expiry_job"))
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger.Sugar()})),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(j.ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order expiry job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce expires orders until a batch comes back short and returns the total.
func (j *OrderExpiryJob) RunOnce(ctx context.Context) (int, error) {
	total := 0
	for range maxBatchesPerRun {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		cmd, err := commands.NewExpireOrdersCommand(time.Now().UTC(), commands.DefaultExpiryBatchSize)
		if err != nil {
			return total, err
		}

		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("Order expiry job failed", zap.Error(err), zap.Int("expired", total))
			return total, err
		}
		total += n

		if n < cmd.BatchSize() {
			break
		}
	}

	if total > 0 {
		j.logger.Info("Expired orders unpublished", zap.Int("expired", total))
	}
	return total, nil
}

// Stop cancels a running pass and waits for it to return.
func (j *OrderExpiryJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.Info("Order expiry job stopped")
}

// cronLogger routes cron's own messages to zap.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
