package bootstrap

import (
	"context"

	"festival-flash-sale/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewScheduler,
	),
	fx.Invoke(
		startScheduler,
	),
)

func startScheduler(lc fx.Lifecycle, s *worker.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
