package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRedisRepo connects to HOIKUPLAN_TEST_REDIS_ADDR and namespaces keys per
// test. The tests are skipped when the variable is unset.
func newRedisRepo(t *testing.T) *RedisSnapshotRepo {
	t.Helper()
	addr := os.Getenv("HOIKUPLAN_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HOIKUPLAN_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := OpenRedis(ctx, RedisConfig{Addr: addr})
	require.NoError(t, err)

	prefix := fmt.Sprintf("hoikuplan-test:%s:%d", t.Name(), time.Now().UnixNano())
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return NewRedisSnapshotRepo(client).WithPrefix(prefix)
}

func TestRedisSnapshotRepo_AppendLatestList(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		s := testutil.NewTestSnapshot("u1", domain.KindMonthly,
			testutil.WithValues(domain.FieldValues{"n": fmt.Sprint(i)}))
		require.NoError(t, repo.Append(ctx, s))
		ids = append(ids, s.ID)
	}

	latest, err := repo.Latest(ctx, "u1", domain.KindMonthly)
	require.NoError(t, err)
	assert.Equal(t, ids[2], latest.ID)
	assert.Equal(t, "2", latest.Values["n"])

	list, err := repo.List(ctx, "u1", domain.KindMonthly, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)

	all, err := repo.List(ctx, "u1", domain.KindMonthly, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRedisSnapshotRepo_NotFound(t *testing.T) {
	repo := newRedisRepo(t)

	_, err := repo.Latest(context.Background(), "nobody", domain.KindWeekly)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSnapshotRepo_Prune(t *testing.T) {
	repo := newRedisRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, testutil.NewTestSnapshot("u1", domain.KindAnnual)))
	}

	removed, err := repo.Prune(ctx, "u1", domain.KindAnnual, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	left, err := repo.List(ctx, "u1", domain.KindAnnual, 0)
	require.NoError(t, err)
	assert.Len(t, left, 2)
}
