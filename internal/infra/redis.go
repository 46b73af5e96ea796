package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"baladi/internal/config"
)

func InitRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Error connecting to redis: %v", err)
		log.Fatal("Error connecting to redis")
	}

	return client
}
