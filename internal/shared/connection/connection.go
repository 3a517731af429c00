package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedisWithRetry dials the keyed snapshot store, retrying with a flat
// backoff so a cold docker-compose stack has time to come up.
func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			zap.L().Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}

		zap.L().Warn("redis connection retry",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		time.Sleep(3 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis at %s after %d retries", addr, maxRetries)
}
