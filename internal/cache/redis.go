package cache

import (
	"context"
	"log"
	"time"

	"saborml/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

func InitRedis(cfg *config.Config) {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Error conectando a Redis: %v", err)
	}

	log.Println("✅ Redis OK.")
}

// RedisStore expone Redis como store de bytes con TTL para el motor
// de recomendaciones.
type RedisStore struct {
	c *redis.Client
}

func NewRedisStore() *RedisStore {
	return &RedisStore{c: client}
}

// Get devuelve (valor, true) si la clave existe; (nil, false) si no.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.c == nil {
		return nil, false, nil
	}

	val, err := s.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// no existe la clave
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if s.c == nil {
		return nil
	}
	return s.c.Set(ctx, key, val, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if s.c == nil {
		return nil
	}
	return s.c.Del(ctx, key).Err()
}
