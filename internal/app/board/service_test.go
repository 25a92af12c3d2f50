package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"messageboard/internal/app/thread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	boards []thread.BoardSummary
	err    error
}

func (s stubLister) ListBoards(context.Context) ([]thread.BoardSummary, error) {
	return s.boards, s.err
}

func TestGetAllBoards(t *testing.T) {
	now := time.Now().UTC()
	want := []thread.BoardSummary{
		{Name: "b", ThreadCount: 2, BumpedOn: now},
		{Name: "a", ThreadCount: 1, BumpedOn: now.Add(-time.Minute)},
	}

	got, err := NewService(stubLister{boards: want}).GetAllBoards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetAllBoardsEmptyIsNotNil(t *testing.T) {
	got, err := NewService(stubLister{}).GetAllBoards(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetAllBoardsWrapsStoreError(t *testing.T) {
	storeErr := errors.New("boom")
	_, err := NewService(stubLister{err: storeErr}).GetAllBoards(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
