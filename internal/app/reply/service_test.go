package reply_test

import (
	"context"
	"errors"
	"testing"

	"messageboard/internal/app/reply"
	"messageboard/internal/app/thread"
	"messageboard/internal/app/thread/threadtest"
	"messageboard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	repo    *threadtest.MemoryRepository
	threads thread.Service
	replies reply.Service
}

func newFixture() *fixture {
	repo := threadtest.NewMemoryRepository()
	return &fixture{
		repo:    repo,
		threads: thread.NewService(repo, utils.NewTextFilter(false), zap.NewNop()),
		replies: reply.NewService(repo, utils.NewTextFilter(false), zap.NewNop()),
	}
}

func (f *fixture) thread(t *testing.T, board string) string {
	t.Helper()
	created, err := f.threads.CreateThread(context.Background(), board, "Test Thread", "valid_password")
	require.NoError(t, err)
	return created.ID
}

func TestCreateReply(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	threadID := f.thread(t, "test_board")

	created, err := f.replies.CreateReply(ctx, "test_board", threadID, "Test Reply", "valid_password")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Reply", created.Text)

	stored := f.repo.Get(threadID)
	require.Len(t, stored.Replies, 1)
	assert.Equal(t, created.ID, stored.Replies[0].ID)
	assert.Equal(t, "valid_password", stored.Replies[0].DeletePassword)
	assert.False(t, stored.Replies[0].Reported)
	assert.True(t, stored.BumpedOn.Equal(created.CreatedOn), "thread is bumped to the reply time")
}

func TestCreateReplyKeepsInsertionOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	threadID := f.thread(t, "b")

	var ids []string
	for _, text := range []string{"one", "two", "three", "four"} {
		created, err := f.replies.CreateReply(ctx, "b", threadID, text, "pw")
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	view, err := f.replies.GetThread(ctx, "b", threadID)
	require.NoError(t, err)
	require.Len(t, view.Replies, 4)
	for i, r := range view.Replies {
		assert.Equal(t, ids[i], r.ID)
	}
	assert.True(t, view.BumpedOn.Equal(view.Replies[3].CreatedOn))
}

func TestCreateReplyErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	threadID := f.thread(t, "b")

	_, err := f.replies.CreateReply(ctx, "b", threadID, "", "pw")
	assert.True(t, thread.IsValidation(err))
	_, err = f.replies.CreateReply(ctx, "b", "", "text", "pw")
	assert.True(t, thread.IsValidation(err))
	_, err = f.replies.CreateReply(ctx, "b", threadID, "text", "")
	assert.True(t, thread.IsValidation(err))

	_, err = f.replies.CreateReply(ctx, "b", "missing", "text", "pw")
	assert.ErrorIs(t, err, thread.ErrThreadNotFound)
	_, err = f.replies.CreateReply(ctx, "other", threadID, "text", "pw")
	assert.ErrorIs(t, err, thread.ErrThreadNotFound)

	f.repo.Err = errors.New("store down")
	_, err = f.replies.CreateReply(ctx, "b", threadID, "text", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, thread.ErrThreadNotFound)
	assert.False(t, thread.IsValidation(err))
}

func TestGetThreadReturnsAllRepliesWithoutSecrets(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	threadID := f.thread(t, "b")
	for i := 0; i < 5; i++ {
		_, err := f.replies.CreateReply(ctx, "b", threadID, "text", "pw")
		require.NoError(t, err)
	}

	view, err := f.replies.GetThread(ctx, "b", threadID)
	require.NoError(t, err)
	assert.Equal(t, threadID, view.ID)
	assert.Equal(t, "b", view.Board)
	assert.Len(t, view.Replies, 5)

	_, err = f.replies.GetThread(ctx, "b", "")
	assert.True(t, thread.IsValidation(err))
	_, err = f.replies.GetThread(ctx, "b", "missing")
	assert.ErrorIs(t, err, thread.ErrThreadNotFound)
}

func TestReportReply(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	threadID := f.thread(t, "b")
	created, err := f.replies.CreateReply(ctx, "b", threadID, "text", "pw")
	require.NoError(t, err)

	require.NoError(t, f.replies.ReportReply(ctx, "b", threadID, created.ID))
	assert.True(t, f.repo.Get(threadID).Replies[0].Reported)
	assert.False(t, f.repo.Get(threadID).Reported, "reporting a reply does not flag its thread")

	require.NoError(t, f.replies.ReportReply(ctx, "b", threadID, created.ID))

	assert.ErrorIs(t, f.replies.ReportReply(ctx, "b", threadID, "missing"), thread.ErrReplyNotFound)
	assert.ErrorIs(t, f.replies.ReportReply(ctx, "b", "missing", created.ID), thread.ErrThreadNotFound)
	assert.True(t, thread.IsValidation(f.replies.ReportReply(ctx, "b", threadID, "")))
}

func TestDeleteReply(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	threadID := f.thread(t, "b")
	first, err := f.replies.CreateReply(ctx, "b", threadID, "first", "valid_password")
	require.NoError(t, err)
	second, err := f.replies.CreateReply(ctx, "b", threadID, "second", "other")
	require.NoError(t, err)

	err = f.replies.DeleteReply(ctx, "b", threadID, first.ID, "invalid_password")
	assert.ErrorIs(t, err, thread.ErrIncorrectPassword)
	assert.Equal(t, "first", f.repo.Get(threadID).Replies[0].Text)

	require.NoError(t, f.replies.DeleteReply(ctx, "b", threadID, first.ID, "valid_password"))

	stored := f.repo.Get(threadID)
	require.Len(t, stored.Replies, 2, "deleted replies stay in the thread")
	assert.Equal(t, first.ID, stored.Replies[0].ID)
	assert.Equal(t, thread.DeletedReplyText, stored.Replies[0].Text)
	assert.True(t, first.CreatedOn.Equal(stored.Replies[0].CreatedOn))
	assert.Equal(t, "second", stored.Replies[1].Text)
	assert.Equal(t, second.ID, stored.Replies[1].ID)

	assert.ErrorIs(t, f.replies.DeleteReply(ctx, "b", threadID, "missing", "pw"), thread.ErrReplyNotFound)
	assert.ErrorIs(t, f.replies.DeleteReply(ctx, "b", "missing", first.ID, "pw"), thread.ErrThreadNotFound)
	assert.True(t, thread.IsValidation(f.replies.DeleteReply(ctx, "b", threadID, first.ID, "")))
}
