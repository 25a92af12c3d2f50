package seeder

import (
	"context"

	"messageboard/internal/app/board"
	"messageboard/internal/app/thread"

	"go.uber.org/zap"
)

const (
	WelcomeBoard = "general"
	welcomeText  = "Welcome to the board. Start a thread or reply to this one."
)

type Seeder struct {
	threads  thread.Service
	boards   board.Lister
	password string
	logger   *zap.Logger
}

// NewSeeder seeds through the thread service so seeded data obeys the same
// rules as posted data. password protects the seeded thread from deletion.
func NewSeeder(threads thread.Service, boards board.Lister, password string, logger *zap.Logger) *Seeder {
	return &Seeder{
		threads:  threads,
		boards:   boards,
		password: password,
		logger:   logger,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	s.logger.Info("Running database seeders...")

	if err := s.seedWelcomeThread(ctx); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedWelcomeThread(ctx context.Context) error {
	boards, err := s.boards.ListBoards(ctx)
	if err != nil {
		return err
	}
	if len(boards) > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	created, err := s.threads.CreateThread(ctx, WelcomeBoard, welcomeText, s.password)
	if err != nil {
		return err
	}

	s.logger.Info("Seeded welcome thread",
		zap.String("board", WelcomeBoard),
		zap.String("thread_id", created.ID),
	)
	return nil
}
