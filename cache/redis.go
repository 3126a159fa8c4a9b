package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cantina-api/models"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the catalog listing as one JSON value with a TTL
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the server at url and checks it answers.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisClient(client, ttl), nil
}

// NewRedisClient wraps an already configured client.
func NewRedisClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) GetProducts(ctx context.Context) ([]models.Product, bool, error) {
	value, err := r.client.Get(ctx, ProductsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var products []models.Product
	if err := json.Unmarshal(value, &products); err != nil {
		return nil, false, err
	}
	return products, true, nil
}

func (r *Redis) SetProducts(ctx context.Context, products []models.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, ProductsKey, payload, r.ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, ProductsKey).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
