// Package events consumes document-created records from the store-side
// Redis queue and feeds them to the dispatch pipeline, one independent
// pipeline pass per record.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/termin-app/notify-service/internal/notify"
)

// Connect builds a Redis client for the queue and verifies the connection.
func Connect(addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// Consumer pops records off a Redis list with BLPop and dispatches each in
// its own goroutine. Ordering between events is deliberately not preserved;
// the pipeline makes no ordering guarantee even for the same recipient.
type Consumer struct {
	rdb        *redis.Client
	dispatcher *notify.Dispatcher
	queue      string
	log        *logrus.Logger
}

func NewConsumer(rdb *redis.Client, dispatcher *notify.Dispatcher, queue string, log *logrus.Logger) *Consumer {
	return &Consumer{rdb: rdb, dispatcher: dispatcher, queue: queue, log: log}
}

// Run blocks, popping and dispatching records until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		// BLPop with a short timeout so cancellation is noticed.
		res, err := c.rdb.BLPop(ctx, 3*time.Second, c.queue).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				c.log.WithError(err).Error("BLPop failed")
			}
			continue
		}
		if len(res) < 2 {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
			c.log.WithError(err).Warn("invalid event record, skipping")
			continue
		}

		ev, err := ParseEvent(rec)
		if err != nil {
			c.log.WithError(err).Warn("skipping event record")
			continue
		}
		c.log.WithField("kind", ev.Kind()).Debug("dispatching event")

		// Each event is an independent short-lived task. The pass is not
		// tied to the consumer loop's lifetime once started.
		go c.dispatcher.Dispatch(context.Background(), ev)
	}
}
