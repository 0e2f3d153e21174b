package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	unreadKeyPattern = "notifications:unread:%d"
	unreadTTL        = 24 * time.Hour
)

// UnreadCounter счетчик непрочитанных уведомлений поверх Redis.
// Источник истины остается в БД, кэш лишь ускоряет чтение.
type UnreadCounter struct {
	client *redis.Client
}

func NewUnreadCounter(client *redis.Client) *UnreadCounter {
	return &UnreadCounter{
		client: client,
	}
}

func (c *UnreadCounter) Increment(ctx context.Context, accountID int64) error {
	key := unreadKey(accountID)

	// инкрементим только прогретый ключ, иначе насчитаем мимо БД
	ok, err := c.client.Expire(ctx, key, unreadTTL).Result()
	if err != nil {
		return fmt.Errorf("touch unread counter: %w", err)
	}
	if !ok {
		return nil
	}

	err = c.client.Incr(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("increment unread counter: %w", err)
	}
	return nil
}

func (c *UnreadCounter) Get(ctx context.Context, accountID int64) (int64, bool, error) {
	count, err := c.client.Get(ctx, unreadKey(accountID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get unread counter: %w", err)
	}
	return count, true, nil
}

func (c *UnreadCounter) Set(ctx context.Context, accountID, count int64) error {
	err := c.client.Set(ctx, unreadKey(accountID), count, unreadTTL).Err()
	if err != nil {
		return fmt.Errorf("set unread counter: %w", err)
	}
	return nil
}

func (c *UnreadCounter) Invalidate(ctx context.Context, accountID int64) error {
	err := c.client.Del(ctx, unreadKey(accountID)).Err()
	if err != nil {
		return fmt.Errorf("invalidate unread counter: %w", err)
	}
	return nil
}

func unreadKey(accountID int64) string {
	return fmt.Sprintf(unreadKeyPattern, accountID)
}
