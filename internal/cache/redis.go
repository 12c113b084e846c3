package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rmoulin/skyflight/config"
	"github.com/rmoulin/skyflight/internal/domain"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	sessionTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, sessionTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		sessionTTL: sessionTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// SaveSession stores a wizard session under its token. raw is the session's
// json encoding; the cache does not interpret it. Each write refreshes the
// session TTL.
func (c *RedisCache) SaveSession(ctx context.Context, sid string, raw []byte) error {
	return c.client.Set(ctx, sessionKey(sid), raw, c.sessionTTL).Err()
}

func (c *RedisCache) GetSession(ctx context.Context, sid string) ([]byte, error) {
	data, err := c.client.Get(ctx, sessionKey(sid)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (c *RedisCache) DeleteSession(ctx context.Context, sid string) error {
	return c.client.Del(ctx, sessionKey(sid)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func sessionKey(sid string) string {
	return "wizard:session:" + sid
}
