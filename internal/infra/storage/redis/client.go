// Package redis stores zapland records in Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// conn is the subset of *redis.Client the package uses.
type conn interface {
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

var _ conn = (*redis.Client)(nil)

type client struct {
	conn conn
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &client{
		conn: rdb,
	}, nil
}
