package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"marigold-backend/shared/config"
)

// RateLimitConfig holds a fixed-window limit
type RateLimitConfig struct {
	MaxRequests int
	TimeWindow  time.Duration
	Message     string
}

// CounterStore counts requests per key within a fixed window
type CounterStore interface {
	Increment(key string, window time.Duration) (int, error)
}

// memoryStore is the default single-process counter store
type memoryStore struct {
	mutex   sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func newMemoryStore() *memoryStore {
	store := &memoryStore{windows: make(map[string]*window)}
	go store.cleanup()
	return store
}

// cleanup removes expired windows
func (s *memoryStore) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, w := range s.windows {
			if now.After(w.resetAt) {
				delete(s.windows, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *memoryStore) Increment(key string, windowSize time.Duration) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	w, exists := s.windows[key]
	if !exists || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(windowSize)}
		s.windows[key] = w
	}

	w.count++
	return w.count, nil
}

// redisStore shares counters across processes via INCR/EXPIRE
type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Increment(key string, windowSize time.Duration) (int, error) {
	ctx := context.Background()

	count, err := s.client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.client.Expire(ctx, "ratelimit:"+key, windowSize)
	}
	return int(count), nil
}

// NewCounterStore returns a Redis-backed store when Redis is configured,
// otherwise the in-memory store
func NewCounterStore() CounterStore {
	cfg := config.GetConfig()
	if cfg.RedisHost == "" {
		return newMemoryStore()
	}

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("❌ Redis unavailable (%v), falling back to in-memory rate limiting", err)
		return newMemoryStore()
	}

	log.Printf("✅ Redis rate limit store connected - %s:%s", cfg.RedisHost, cfg.RedisPort)
	return &redisStore{client: client}
}

// RateLimiter applies fixed-window limits keyed by client IP
type RateLimiter struct {
	store CounterStore
	name  string
}

// NewRateLimiter creates a rate limiter backed by the given store
func NewRateLimiter(name string, store CounterStore) *RateLimiter {
	return &RateLimiter{store: store, name: name}
}

// Middleware rejects requests over the limit with a 429 envelope
func (rl *RateLimiter) Middleware(limit RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", rl.name, c.ClientIP())

		count, err := rl.store.Increment(key, limit.TimeWindow)
		if err != nil {
			// A broken counter store must not take the API down
			log.Printf("❌ Rate limit store error: %v", err)
			c.Next()
			return
		}

		if count > limit.MaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": limit.Message,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GeneralRateLimitConfig builds the general API limit from config
func GeneralRateLimitConfig() RateLimitConfig {
	cfg := config.GetConfig()
	return RateLimitConfig{
		MaxRequests: cfg.GetRateLimitMaxRequests(),
		TimeWindow:  time.Duration(cfg.GetRateLimitTimeWindowSeconds()) * time.Second,
		Message:     "Too many requests from this IP, please try again later.",
	}
}

// LoginRateLimitConfig builds the stricter login limit from config
func LoginRateLimitConfig() RateLimitConfig {
	cfg := config.GetConfig()
	return RateLimitConfig{
		MaxRequests: cfg.GetLoginRateLimitMaxAttempts(),
		TimeWindow:  time.Duration(cfg.GetLoginRateLimitWindowSeconds()) * time.Second,
		Message:     "Too many login attempts, please try again later.",
	}
}
