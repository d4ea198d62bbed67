// Package redis provides Redis-backed storage for the coin-flip client.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to addr and pings it once. The connection is
// reachable before the client is returned.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
