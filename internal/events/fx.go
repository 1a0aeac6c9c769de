package events

import (
	"context"

	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewBus),
	fx.Invoke(runConsumer),
)

// runConsumer starts the Kafka feeder when KAFKA_BROKERS is set.
func runConsumer(lc fx.Lifecycle, cfg *config.Config, bus *Bus, log logger.Logger) {
	if cfg.Kafka.Brokers == "" {
		return
	}

	consumer := NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, bus, log)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				_ = consumer.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
