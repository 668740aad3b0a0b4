package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAppend_FileDB saves from many goroutines against a file
// database, which shares state across pooled connections.
func TestConcurrentAppend_FileDB(t *testing.T) {
	repo := NewSQLiteSnapshotRepo(testutil.NewFileTestDB(t))
	ctx := context.Background()

	const writers = 8
	const perWriter = 10

	var wg sync.WaitGroup
	errCh := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", w%2)
			for i := 0; i < perWriter; i++ {
				s := testutil.NewTestSnapshot(user, domain.KindMonthly,
					testutil.WithValues(domain.FieldValues{"writer": fmt.Sprint(w), "i": fmt.Sprint(i)}))
				if err := repo.Append(ctx, s); err != nil {
					errCh <- err
				}
			}
		}(w)
	}

	// Readers run alongside the writers.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := repo.List(ctx, "user-0", domain.KindMonthly, 5); err != nil {
					errCh <- err
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	total := 0
	for _, user := range []string{"user-0", "user-1"} {
		list, err := repo.List(ctx, user, domain.KindMonthly, 0)
		require.NoError(t, err)
		total += len(list)
	}
	assert.Equal(t, writers*perWriter, total)
}
