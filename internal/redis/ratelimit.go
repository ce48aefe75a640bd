package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Rate limiting key patterns:
// - ratelimit:{owner_id}:generate - 60s TTL, per-minute generation limit
// - ratelimit:{owner_id}:calendar - 60s TTL, per-minute calendar writes

// RateLimitConfig contains configuration for rate limiting
type RateLimitConfig struct {
	GenerateLimit  int           // Max generations per window
	GenerateWindow time.Duration // Generation rate limit window
	CalendarLimit  int           // Max calendar writes per window
	CalendarWindow time.Duration // Calendar rate limit window
}

// DefaultRateLimitConfig returns sensible defaults
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		GenerateLimit:  10, // 10 generations per minute
		GenerateWindow: 60 * time.Second,
		CalendarLimit:  30, // 30 calendar writes per minute
		CalendarWindow: 60 * time.Second,
	}
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client *goredis.Client
	config RateLimitConfig
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed   bool          // Whether the action is allowed
	Remaining int           // Remaining actions in the window
	ResetIn   time.Duration // Time until the window resets
	Limit     int           // The limit for this action
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// AllowGenerate checks if an owner can run another generation
func (r *RateLimiter) AllowGenerate(ctx context.Context, ownerID string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:generate", ownerID)
	return r.checkLimit(ctx, key, r.config.GenerateLimit, r.config.GenerateWindow)
}

// AllowCalendarWrite checks if an owner can create or delete a calendar event
func (r *RateLimiter) AllowCalendarWrite(ctx context.Context, ownerID string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:calendar", ownerID)
	return r.checkLimit(ctx, key, r.config.CalendarLimit, r.config.CalendarWindow)
}

// checkLimit performs the actual rate limit check using a fixed window counter
func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	// Use Lua script for atomic increment and check
	script := goredis.NewScript(`
		local key = KEYS[1]
		local limit = tonumber(ARGV[1])
		local window = tonumber(ARGV[2])

		local current = redis.call('GET', key)
		if current == false then
			current = 0
		else
			current = tonumber(current)
		end

		local ttl = redis.call('TTL', key)
		if ttl < 0 then
			ttl = window
		end

		if current < limit then
			redis.call('INCR', key)
			if ttl == window then
				redis.call('EXPIRE', key, window)
			end
			return {1, limit - current - 1, ttl}
		else
			return {0, 0, ttl}
		end
	`)

	result, err := script.Run(ctx, r.client, []string{key}, limit, int(window.Seconds())).Result()
	if err != nil {
		return nil, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 3 {
		return nil, fmt.Errorf("unexpected rate limit script result: %v", result)
	}

	allowed, _ := values[0].(int64)
	remaining, _ := values[1].(int64)
	ttl, _ := values[2].(int64)

	return &RateLimitResult{
		Allowed:   allowed == 1,
		Remaining: int(remaining),
		ResetIn:   time.Duration(ttl) * time.Second,
		Limit:     limit,
	}, nil
}
