package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Checker interface {
	UserID(ctx context.Context, token string) (string, error)
}

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserID resolves a session token to the id of its user.
func (lc *LoginChecker) UserID(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	cmd := lc.redisClient.HGetAll(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return "", err
	}

	session := cmd.Val()
	userID := session[fieldUserID]
	if userID == "" {
		return "", ErrSessionNotFound
	}

	createdAt, err := parseUnix(session[fieldCreatedAt])
	if err != nil {
		return "", err
	}
	if time.Since(createdAt) > lc.ttl {
		return "", ErrSessionExpired
	}

	return userID, nil
}

// LoginTestChecker resolves tokens from a fixed map, for tests and local development.
type LoginTestChecker struct {
	// token to user id
	Sessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		Sessions: map[string]string{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (string, error) {
	userID, ok := c.Sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}
