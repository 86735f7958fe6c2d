package repository

import (
	"context"
	"encoding/json"
	"errors"

	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "techflow:"

// RedisRecordRepository keeps records and counters in Redis. Records are stored
// as JSON strings without expiry; counters use INCR.
type RedisRecordRepository struct {
	client *redis.Client
}

var (
	_ interfaces.IRecordStore  = (*RedisRecordRepository)(nil)
	_ interfaces.ICounterStore = (*RedisRecordRepository)(nil)
)

func NewRedisRecordRepository(client *redis.Client) *RedisRecordRepository {
	return &RedisRecordRepository{client: client}
}

func recordKey(key string) string   { return redisKeyPrefix + "record:" + key }
func counterKey(name string) string { return redisKeyPrefix + "counter:" + name }

func (r *RedisRecordRepository) Save(ctx context.Context, key string, rec entities.Record) error {
	rec.Key = key
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, recordKey(key), data, 0).Err()
}

func (r *RedisRecordRepository) Load(ctx context.Context, key string) (entities.Record, bool, error) {
	data, err := r.client.Get(ctx, recordKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Record{}, false, nil
	}
	if err != nil {
		return entities.Record{}, false, err
	}
	var rec entities.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return entities.Record{}, false, err
	}
	return rec, true, nil
}

func (r *RedisRecordRepository) Peek(ctx context.Context, name string) (int64, error) {
	n, err := r.client.Get(ctx, counterKey(name)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (r *RedisRecordRepository) Increment(ctx context.Context, name string) (int64, error) {
	return r.client.Incr(ctx, counterKey(name)).Result()
}
