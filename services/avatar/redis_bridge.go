package avatar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher announces avatar updates.
type Publisher interface {
	PublishUpdate(ctx context.Context, u Update) error
}

// LocalPublisher publishes on the process-wide broadcaster only.
type LocalPublisher struct{}

func (LocalPublisher) PublishUpdate(_ context.Context, u Update) error {
	TriggerAvatarUpdate(u.ProfileID, u.AvatarURL)
	return nil
}

type envelope struct {
	Origin string `json:"origin"`
	Event  string `json:"event"`
	Update Update `json:"update"`
}

// RedisBridge shares avatar updates between instances over a Redis channel.
// Local publishes reach local subscribers directly; messages that arrive from
// other instances are re-dispatched locally. Own messages are ignored.
type RedisBridge struct {
	client  *redis.Client
	channel string
	local   *Broadcaster
	origin  string
	logger  *zap.Logger
}

func NewRedisBridge(client *redis.Client, channel string, local *Broadcaster, logger *zap.Logger) *RedisBridge {
	return &RedisBridge{
		client:  client,
		channel: channel,
		local:   local,
		origin:  uuid.New().String(),
		logger:  logger,
	}
}

// PublishUpdate dispatches locally, then announces the update to other instances.
func (b *RedisBridge) PublishUpdate(ctx context.Context, u Update) error {
	b.local.Publish(u)

	data, err := json.Marshal(envelope{Origin: b.origin, Event: EventAvatarUpdated, Update: u})
	if err != nil {
		return fmt.Errorf("failed to encode avatar update: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish avatar update: %w", err)
	}
	return nil
}

// Run relays remote updates until ctx is cancelled.
func (b *RedisBridge) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}
	b.logger.Info("avatar bridge subscribed", zap.String("channel", b.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.handlePayload(msg.Payload)
		}
	}
}

func (b *RedisBridge) handlePayload(payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.logger.Warn("avatar bridge: dropping malformed message", zap.Error(err))
		return
	}
	if env.Origin == b.origin || env.Event != EventAvatarUpdated {
		return
	}
	b.local.Publish(env.Update)
}
