package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// All entries go to one channel; subscribers filter by brand.
const actionLogChannel = "action_log:live"

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscription *redis.PubSub
	subscriberMu sync.Mutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client: client,
		logger: logger,
	}
}

// Publish publishes an action log entry to the live channel
func (ps *RedisPubSub) Publish(ctx context.Context, entry *dto.ActionLogResponse) error {
	message, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal action log entry: %w", err)
	}

	if err := ps.client.Publish(ctx, actionLogChannel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", actionLogChannel, err)
	}

	return nil
}

// Subscribe relays every live entry to callback until ctx is done. Only one
// subscription is held per process.
func (ps *RedisPubSub) Subscribe(ctx context.Context, callback func(*dto.ActionLogResponse)) error {
	ps.subscriberMu.Lock()
	if ps.subscription != nil {
		ps.subscriberMu.Unlock()
		ps.logger.Infof("Already subscribed to channel: %s", actionLogChannel)
		return nil
	}
	sub := ps.client.Subscribe(ctx, actionLogChannel)
	ps.subscription = sub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for channel: %s", actionLogChannel)
			ps.subscriberMu.Lock()
			if ps.subscription == sub {
				ps.subscription = nil
			}
			ps.subscriberMu.Unlock()
			sub.Close()
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var entry dto.ActionLogResponse
				if err := json.Unmarshal([]byte(msg.Payload), &entry); err != nil {
					ps.logger.Errorf("Failed to unmarshal action log entry from channel %s: %v", actionLogChannel, err)
					continue
				}
				callback(&entry)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to channel: %s", actionLogChannel)
	return nil
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if ps.subscription != nil {
		ps.subscription.Close()
		ps.subscription = nil
		ps.logger.Infof("Closed subscription for channel: %s", actionLogChannel)
	}
}
