package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/assetdesk/backend/internal/config"
	"github.com/assetdesk/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisBackend Redis后端
//
// 全量文档序列化后存储在单个键下
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisClient 创建Redis客户端
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewRedisBackend 创建Redis后端
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	return &RedisBackend{client: client, key: key}
}

// Name 后端名称
func (b *RedisBackend) Name() string {
	return "redis"
}

// Read 读取全量文档
func (b *RedisBackend) Read(ctx context.Context) (domain.Document, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.EmptyDocument(), nil
		}
		return nil, fmt.Errorf("failed to read document from redis: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// 损坏的文档等同于无文档
		return domain.EmptyDocument(), nil
	}
	if doc == nil {
		return domain.EmptyDocument(), nil
	}
	return doc, nil
}

// Write 写入全量文档
func (b *RedisBackend) Write(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write document to redis: %w", err)
	}
	return nil
}
