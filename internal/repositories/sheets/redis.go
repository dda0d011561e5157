package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hindren/qudprops/internal/engine"
	qerr "github.com/hindren/qudprops/internal/errors"
	"github.com/hindren/qudprops/internal/uuid"
)

// RedisRepoConfig holds configuration for the Redis repository.
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// IDs generates snapshot run IDs. Defaults to random UUIDs.
	IDs uuid.Generator

	// TTL bounds how long cached sheets live. Zero means no expiry.
	TTL time.Duration
}

type redisRepo struct {
	client redis.UniversalClient
	ids    uuid.Generator
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed sheet repository.
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil {
		return nil, qerr.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, qerr.InvalidArgument("redis client cannot be nil")
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.Google{}
	}
	return &redisRepo{
		client: cfg.Client,
		ids:    ids,
		ttl:    cfg.TTL,
	}, nil
}

func (r *redisRepo) sheetKey(name string) string {
	return fmt.Sprintf("sheet:%s", name)
}

func (r *redisRepo) runKey(runID string) string {
	return fmt.Sprintf("sheetrun:%s", runID)
}

func (r *redisRepo) Put(ctx context.Context, name string, sheet engine.PropertySheet) error {
	if name == "" {
		return qerr.InvalidArgument("entity name is required")
	}
	data, err := json.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet: %w", err)
	}
	if err := r.client.Set(ctx, r.sheetKey(name), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store sheet: %w", err)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, name string) (engine.PropertySheet, error) {
	if name == "" {
		return nil, qerr.InvalidArgument("entity name is required")
	}
	data, err := r.client.Get(ctx, r.sheetKey(name)).Result()
	if err == redis.Nil {
		return nil, qerr.NotFoundf("no sheet cached for %q", name).
			WithMeta("entity", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	var sheet engine.PropertySheet
	if err := json.Unmarshal([]byte(data), &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sheet: %w", err)
	}
	return sheet, nil
}

func (r *redisRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return qerr.InvalidArgument("entity name is required")
	}
	if err := r.client.Del(ctx, r.sheetKey(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	return nil
}

func (r *redisRepo) PutSnapshot(ctx context.Context, sheets map[string]engine.PropertySheet) (string, error) {
	if len(sheets) == 0 {
		return "", qerr.InvalidArgument("snapshot needs at least one sheet")
	}

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	runID := r.ids.New()
	key := r.runKey(runID)

	pipe := r.client.Pipeline()
	for _, name := range names {
		data, err := json.Marshal(sheets[name])
		if err != nil {
			return "", fmt.Errorf("failed to marshal sheet for %q: %w", name, err)
		}
		pipe.HSet(ctx, key, name, data)
	}
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}
	return runID, nil
}

func (r *redisRepo) GetSnapshot(ctx context.Context, runID string) (map[string]engine.PropertySheet, error) {
	if runID == "" {
		return nil, qerr.InvalidArgument("run ID is required")
	}
	fields, err := r.client.HGetAll(ctx, r.runKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	if len(fields) == 0 {
		return nil, qerr.NotFoundf("no snapshot stored for run %q", runID).
			WithMeta("run_id", runID)
	}
	out := make(map[string]engine.PropertySheet, len(fields))
	for name, raw := range fields {
		var sheet engine.PropertySheet
		if err := json.Unmarshal([]byte(raw), &sheet); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sheet for %q: %w", name, err)
		}
		out[name] = sheet
	}
	return out, nil
}
