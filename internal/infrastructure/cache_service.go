package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"exercise-tracker/internal/config"
)

// CacheService is a JSON read-through cache over Redis. When Redis is not
// reachable at startup the service degrades to a no-op so the API keeps
// working without it. A nil *CacheService is also a no-op.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService() *CacheService {
	ttl := config.GetDuration("CACHE_TTL", 5*time.Minute)

	client := newClient()
	if client == nil {
		return &CacheService{ttl: ttl}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("redis unreachable, cache disabled:", err)
		return &CacheService{ttl: ttl}
	}

	log.Println("connected to Redis at", client.Options().Addr)
	return &CacheService{client: client, ttl: ttl}
}

func newClient() *redis.Client {
	if redisURL := config.GetString("REDIS_URL", ""); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Println("invalid REDIS_URL, cache disabled:", err)
			return nil
		}
		return redis.NewClient(opt)
	}

	addr := fmt.Sprintf("%s:%s",
		config.GetString("REDIS_HOST", "localhost"),
		config.GetString("REDIS_PORT", "6379"))
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetString("REDIS_PASSWORD", ""),
		DB:       config.GetInt("REDIS_DB", 0),
	})
}

// Get reports whether key was found and, if so, unmarshals the cached JSON
// into dest. Cache errors are logged and treated as misses.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.client == nil {
		return false
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Println("cache get:", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Println("cache decode:", err)
		return false
	}
	return true
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) {
	if s == nil || s.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Println("cache encode:", err)
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		log.Println("cache set:", err)
	}
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) {
	if s == nil || s.client == nil || len(keys) == 0 {
		return
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache delete:", err)
	}
}

func (s *CacheService) Close() {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		log.Println("redis close:", err)
	}
}
