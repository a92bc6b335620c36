package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/YoavDdev/studio-boaz-backend/pkg/config"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg *cfgpkg.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewRedisStore(client *redis.Client) Store {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

func registerRedisClose(lc fx.Lifecycle, log *zap.SugaredLogger, client *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Infow("closing redis connection")
			return client.Close()
		},
	})
}

var Module = fx.Options(
	fx.Provide(NewRedisClient),
	fx.Provide(NewRedisStore),
	fx.Invoke(registerRedisClose),
)
