package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

const goodTTL = time.Minute

type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) SetGood(ctx context.Context, good *models.Good) error {
	data, err := json.Marshal(good)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, goodKey(good.ID), data, goodTTL).Err()
}

// GetGood returns nil, nil on a cache miss.
func (r *RedisRepository) GetGood(ctx context.Context, id int) (*models.Good, error) {
	data, err := r.client.Get(ctx, goodKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var good models.Good
	if err := json.Unmarshal(data, &good); err != nil {
		return nil, err
	}

	return &good, nil
}

func (r *RedisRepository) InvalidateGood(ctx context.Context, id int) error {
	return r.client.Del(ctx, goodKey(id)).Err()
}

func goodKey(id int) string {
	return fmt.Sprintf("good:%d", id)
}
