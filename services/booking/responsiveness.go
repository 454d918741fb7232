package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// slowestResponseMinutes is the input fed to the scorer when no metric has been
// recorded for a painter. It lands in the lowest responsiveness tier, so an
// unmeasured painter never outranks a measured-fast one.
const slowestResponseMinutes = okResponseMinutes

// ResponsivenessProvider looks up a painter's average response time in minutes.
// It replaces the placeholder random responsiveness term of the legacy system
// with an explicit, injectable capability.
type ResponsivenessProvider interface {
	AvgResponseMinutes(ctx context.Context, providerID string) (float64, error)
}

// RedisResponsivenessProvider reads a rolling average maintained by the
// messaging pipeline from Redis.
type RedisResponsivenessProvider struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResponsivenessProvider(client *redis.Client) *RedisResponsivenessProvider {
	return &RedisResponsivenessProvider{Client: client, TTL: 30 * 24 * time.Hour}
}

func responsivenessKey(providerID string) string {
	return "responsiveness:" + providerID
}

func (p *RedisResponsivenessProvider) AvgResponseMinutes(ctx context.Context, providerID string) (float64, error) {
	val, err := p.Client.Get(ctx, responsivenessKey(providerID)).Result()
	if err == redis.Nil {
		return slowestResponseMinutes, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read responsiveness metric for %s: %w", providerID, err)
	}
	minutes, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed responsiveness metric for %s: %w", providerID, err)
	}
	return minutes, nil
}

// RecordResponse folds one observed response time into the stored average using
// an exponential moving average with a 0.3 weight on the new sample.
func (p *RedisResponsivenessProvider) RecordResponse(ctx context.Context, providerID string, minutes float64) error {
	key := responsivenessKey(providerID)
	prev, err := p.AvgResponseMinutes(ctx, providerID)
	if err != nil {
		return err
	}
	avg := prev*0.7 + minutes*0.3
	if err := p.Client.Set(ctx, key, strconv.FormatFloat(avg, 'f', 4, 64), p.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store responsiveness metric for %s: %w", providerID, err)
	}
	return nil
}

// StaticResponsivenessProvider returns a fixed value for every painter.
// Used in tests and as a deterministic fallback when Redis is unavailable.
type StaticResponsivenessProvider struct {
	Minutes float64
}

func (p StaticResponsivenessProvider) AvgResponseMinutes(context.Context, string) (float64, error) {
	return p.Minutes, nil
}
