package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"innkeeper/internal/logger"
)

// Client caches resolved credentials and the room board snapshot in Valkey.
// Cache misses always fall through to Postgres, so data here is disposable.
type Client struct {
	rdb *redis.Client
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

const (
	authKeyPrefix  = "auth:"
	authUserPrefix = "authuser:"
	roomBoardKey   = "roomboard"
	authTTL        = 5 * time.Minute
	roomBoardTTL   = 10 * time.Second
	dialTimeout    = 5 * time.Second
	commandTimeout = 2 * time.Second
)

func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to valkey: %w", err)
	}

	logger.Get().Info("Connected to Valkey", "addr", cfg.Addr)
	return &Client{rdb: rdb}, nil
}

// GetUserIDByAuth returns the cached user id for a credential digest,
// or empty string on miss
func (c *Client) GetUserIDByAuth(ctx context.Context, digest string) (string, error) {
	val, err := c.rdb.Get(ctx, authKeyPrefix+digest).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read auth cache: %w", err)
	}
	return val, nil
}

// SetUserIDByAuth caches a credential digest to user id mapping. A
// reverse entry by user id is kept alongside so the digest can be found
// when the account changes.
func (c *Client) SetUserIDByAuth(ctx context.Context, digest, userID string) error {
	if err := c.rdb.Set(ctx, authKeyPrefix+digest, userID, authTTL).Err(); err != nil {
		return fmt.Errorf("failed to write auth cache: %w", err)
	}
	if err := c.rdb.Set(ctx, authUserPrefix+userID, digest, authTTL).Err(); err != nil {
		return fmt.Errorf("failed to write auth index: %w", err)
	}
	return nil
}

// InvalidateAuth drops a cached credential, used after password changes
func (c *Client) InvalidateAuth(ctx context.Context, digest string) error {
	return c.rdb.Del(ctx, authKeyPrefix+digest).Err()
}

// InvalidateUser drops any cached credential for a user id, used when
// the account is deactivated or its password changes
func (c *Client) InvalidateUser(ctx context.Context, userID string) error {
	digest, err := c.rdb.Get(ctx, authUserPrefix+userID).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read auth index: %w", err)
	}
	if err := c.InvalidateAuth(ctx, digest); err != nil {
		return err
	}
	return c.rdb.Del(ctx, authUserPrefix+userID).Err()
}

// GetRoomBoard returns the cached room board JSON, or nil on miss
func (c *Client) GetRoomBoard(ctx context.Context) ([]byte, error) {
	val, err := c.rdb.Get(ctx, roomBoardKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read room board cache: %w", err)
	}
	return val, nil
}

// SetRoomBoard stores the serialized room board with a short TTL
func (c *Client) SetRoomBoard(ctx context.Context, payload []byte) error {
	if err := c.rdb.Set(ctx, roomBoardKey, payload, roomBoardTTL).Err(); err != nil {
		return fmt.Errorf("failed to write room board cache: %w", err)
	}
	return nil
}

// InvalidateRoomBoard drops the room board snapshot after a room mutation
func (c *Client) InvalidateRoomBoard(ctx context.Context) error {
	return c.rdb.Del(ctx, roomBoardKey).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
