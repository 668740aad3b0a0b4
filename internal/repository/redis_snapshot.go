package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// RedisConfig configures the Redis snapshot store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisSnapshotRepo implements SnapshotRepo with one Redis list per
// (user, doc). New snapshots are pushed on the right.
type RedisSnapshotRepo struct {
	client redis.Cmdable
	prefix string
}

const defaultRedisPrefix = "hoikuplan:forms"

func NewRedisSnapshotRepo(client redis.Cmdable) *RedisSnapshotRepo {
	return &RedisSnapshotRepo{client: client, prefix: defaultRedisPrefix}
}

// WithPrefix returns a copy of the repo that namespaces its keys under prefix.
func (r *RedisSnapshotRepo) WithPrefix(prefix string) *RedisSnapshotRepo {
	return &RedisSnapshotRepo{client: r.client, prefix: prefix}
}

func (r *RedisSnapshotRepo) key(userID string, doc domain.DocumentKind) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, userID, doc)
}

func (r *RedisSnapshotRepo) Append(ctx context.Context, s *domain.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding form snapshot: %w", err)
	}
	if err := r.client.RPush(ctx, r.key(s.UserID, s.DocType), data).Err(); err != nil {
		return fmt.Errorf("pushing form snapshot: %w", err)
	}
	return nil
}

func (r *RedisSnapshotRepo) Latest(ctx context.Context, userID string, doc domain.DocumentKind) (*domain.Snapshot, error) {
	data, err := r.client.LIndex(ctx, r.key(userID, doc), -1).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("form snapshot for %s/%s: %w", userID, doc, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading latest form snapshot: %w", err)
	}
	return decodeSnapshot(data)
}

func (r *RedisSnapshotRepo) List(ctx context.Context, userID string, doc domain.DocumentKind, limit int) ([]*domain.Snapshot, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}
	items, err := r.client.LRange(ctx, r.key(userID, doc), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing form snapshots: %w", err)
	}

	out := make([]*domain.Snapshot, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		s, err := decodeSnapshot([]byte(items[i]))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *RedisSnapshotRepo) Prune(ctx context.Context, userID string, doc domain.DocumentKind, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}
	key := r.key(userID, doc)

	var before *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		before = pipe.LLen(ctx, key)
		pipe.LTrim(ctx, key, int64(-keep), -1)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("pruning form snapshots: %w", err)
	}
	removed := int(before.Val()) - keep
	if removed < 0 {
		removed = 0
	}
	return removed, nil
}

func decodeSnapshot(data []byte) (*domain.Snapshot, error) {
	var s domain.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding form snapshot: %w", err)
	}
	if s.Values == nil {
		s.Values = domain.FieldValues{}
	}
	return &s, nil
}
