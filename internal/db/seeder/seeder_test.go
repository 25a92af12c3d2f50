package seeder

import (
	"context"
	"errors"
	"testing"

	"messageboard/internal/app/thread"
	"messageboard/internal/app/thread/threadtest"
	"messageboard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeeder(repo *threadtest.MemoryRepository) *Seeder {
	threads := thread.NewService(repo, utils.NewTextFilter(false), zap.NewNop())
	return NewSeeder(threads, repo, "seed-pass", zap.NewNop())
}

func TestSeedCreatesWelcomeThreadOnEmptyStore(t *testing.T) {
	repo := threadtest.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, newSeeder(repo).Seed(ctx))

	threads, err := repo.ListByBoard(ctx, WelcomeBoard, 10)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, welcomeText, threads[0].Text)
	assert.Equal(t, "seed-pass", threads[0].DeletePassword)
}

func TestSeedSkipsWhenBoardsExist(t *testing.T) {
	repo := threadtest.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &thread.Thread{Board: "other", Text: "x", DeletePassword: "pw"}))

	require.NoError(t, newSeeder(repo).Seed(ctx))

	threads, err := repo.ListByBoard(ctx, WelcomeBoard, 10)
	require.NoError(t, err)
	assert.Empty(t, threads)
}

func TestSeedPropagatesStoreErrors(t *testing.T) {
	repo := threadtest.NewMemoryRepository()
	repo.Err = errors.New("store down")

	assert.Error(t, newSeeder(repo).Seed(context.Background()))
}
