package board

import (
	"context"
	"fmt"

	"messageboard/internal/app/thread"
)

// Lister is the part of the thread store the board index reads from.
// Boards exist implicitly as soon as a thread is posted to them.
type Lister interface {
	ListBoards(ctx context.Context) ([]thread.BoardSummary, error)
}

type Service interface {
	GetAllBoards(ctx context.Context) ([]thread.BoardSummary, error)
}

type service struct {
	store Lister
}

func NewService(store Lister) Service {
	return &service{store: store}
}

func (s *service) GetAllBoards(ctx context.Context) ([]thread.BoardSummary, error) {
	boards, err := s.store.ListBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	if boards == nil {
		boards = []thread.BoardSummary{}
	}
	return boards, nil
}
