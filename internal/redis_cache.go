package internal

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
)

type redisCache struct {
	r   *redis.Client
	log *logrus.Logger
}

func NewRedisCache(r *redis.Client, log *logrus.Logger) *redisCache {
	return &redisCache{r: r, log: log}
}

func (c *redisCache) Get(key string) ([]byte, error) {
	data, err := c.r.Get(key).Bytes()

	if err == redis.Nil {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return data, nil
}

func (c *redisCache) Set(key string, data []byte, ttl time.Duration) error {
	return c.r.Set(key, data, ttl).Err()
}

// WaitUntilReady pings Redis a few times, backing off between attempts. It
// reports false instead of exiting so the API can run uncached.
func (c *redisCache) WaitUntilReady(attemptLimit int, delay time.Duration) bool {
	for attempts := 1; attempts <= attemptLimit; attempts++ {
		_, err := c.r.Ping().Result()

		if err == nil {
			c.log.Infof("Redis is ready!")
			return true
		}

		if attempts == attemptLimit {
			c.log.WithError(err).Errorf("Failed to connect to Redis after %d tries", attemptLimit)
		} else {
			wait := delay * time.Duration(attempts)
			c.log.WithError(err).Warnf("Failed to connect to Redis, will try again in %s", wait)
			time.Sleep(wait)
		}
	}

	return false
}

type noopCache struct{}

func (noopCache) Get(key string) ([]byte, error) {
	return nil, nil
}

func (noopCache) Set(key string, data []byte, ttl time.Duration) error {
	return nil
}

// NoopCache never stores anything.
func NoopCache() BoundaryCache {
	return noopCache{}
}
