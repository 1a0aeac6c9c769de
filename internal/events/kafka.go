package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Consumer feeds follow events published by other services into the bus.
type Consumer struct {
	reader *kafka.Reader
	bus    *Bus
	logger logger.Logger
}

func NewConsumer(brokers, groupID, topic string, bus *Bus, log logger.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        strings.Split(brokers, ","),
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       1e6,
			CommitInterval: time.Second,
		}),
		bus:    bus,
		logger: log.WithComponent("FollowConsumer"),
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		_ = c.reader.Close()
	}()

	cfg := c.reader.Config()
	c.logger.Info("Follow consumer started", "group", cfg.GroupID, "topic", cfg.Topic, "brokers", cfg.Brokers)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("Follow consumer shutting down")
				return nil
			}
			c.logger.Error("Failed to fetch follow event", "error", err)
			time.Sleep(time.Second)
			continue
		}

		c.Handle(m.Value)

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Error("Failed to commit follow event", "error", err)
		}
	}
}

// Handle decodes one message and publishes it. Malformed messages are logged and
// skipped.
func (c *Consumer) Handle(value []byte) {
	var evt FollowStatusChanged
	if err := json.Unmarshal(value, &evt); err != nil {
		c.logger.Warn("Skipping malformed follow event", "error", err)
		return
	}
	if evt.ViewerEmail == "" || evt.CuratorEmail == "" {
		c.logger.Warn("Skipping follow event without viewer or curator")
		return
	}

	n := c.bus.Publish(evt)
	c.logger.Debug("Follow event published", "viewer", evt.ViewerEmail, "curator", evt.CuratorEmail, "subscribers", n)
}
