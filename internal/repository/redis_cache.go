package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on a Redis instance.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the Redis instance at addr. Entries expire
// after ttl; a zero ttl keeps them indefinitely.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

// Get returns the cached value for key and whether it was present.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the value under key.
func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Delete removes the value stored under key.
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// CachedLoanRepository layers a Cache over a LoanRepository for reads.
type CachedLoanRepository struct {
	inner LoanRepository
	cache Cache
}

// NewCachedLoanRepository wraps a repository with a read-through cache.
func NewCachedLoanRepository(inner LoanRepository, cache Cache) *CachedLoanRepository {
	return &CachedLoanRepository{inner: inner, cache: cache}
}

// Save writes through to the inner repository and refreshes the cache.
func (r *CachedLoanRepository) Save(ctx context.Context, record LoanRecord) error {
	if err := r.inner.Save(ctx, record); err != nil {
		return err
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.cache.Set(ctx, cacheKey(record.ID), string(encoded))
}

// FindByID serves from the cache when possible, falling back to the inner
// repository and repopulating the cache on a miss.
func (r *CachedLoanRepository) FindByID(ctx context.Context, id string) (LoanRecord, error) {
	if cached, ok := r.cache.Get(ctx, cacheKey(id)); ok {
		var record LoanRecord
		if err := json.Unmarshal([]byte(cached), &record); err == nil {
			return record, nil
		}
	}

	record, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return LoanRecord{}, err
	}
	if encoded, marshalErr := json.Marshal(record); marshalErr == nil {
		_ = r.cache.Set(ctx, cacheKey(id), string(encoded))
	}
	return record, nil
}

// FindAll always hits the inner repository.
func (r *CachedLoanRepository) FindAll(ctx context.Context) ([]LoanRecord, error) {
	return r.inner.FindAll(ctx)
}

// Delete removes the record from the inner repository and invalidates the
// cache entry so a subsequent FindByID cannot resurrect the record.
func (r *CachedLoanRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	return r.cache.Delete(ctx, cacheKey(id))
}

func cacheKey(id string) string {
	return "loan:" + id
}
