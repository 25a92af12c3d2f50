package thread

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"messageboard/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateThread(ctx context.Context, board, text, deletePassword string) (*CreatedThread, error)
	GetThreadsByBoard(ctx context.Context, board string) ([]ThreadView, error)
	ReportThread(ctx context.Context, board, threadID string) error
	DeleteThread(ctx context.Context, board, threadID, deletePassword string) error
}

type service struct {
	repo   Repository
	filter utils.TextFilter
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewService(repo Repository, filter utils.TextFilter, logger *zap.Logger) Service {
	if filter == nil {
		filter = utils.NewTextFilter(false)
	}
	return &service{
		repo:   repo,
		filter: filter,
		logger: logger.Sugar(),
		now:    Now,
	}
}

// Now is the timestamp source for new threads and replies. Stored times are
// UTC with millisecond precision so both store backends round-trip them
// unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Field is a named request value checked by Require.
type Field struct {
	Name  string
	Value string
}

// Require returns a ValidationError naming every empty field.
func Require(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}

func (s *service) CreateThread(ctx context.Context, board, text, deletePassword string) (*CreatedThread, error) {
	text = s.filter(text)
	if err := Require(
		Field{"board", board},
		Field{"text", text},
		Field{"delete_password", deletePassword},
	); err != nil {
		return nil, err
	}

	now := s.now()
	t := &Thread{
		Board:          board,
		Text:           text,
		DeletePassword: deletePassword,
		CreatedOn:      now,
		BumpedOn:       now,
		Reported:       false,
		Replies:        []Reply{},
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	s.logger.Infow("Thread created", "board", board, "thread_id", t.ID)

	return &CreatedThread{
		ID:        t.ID,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Replies:   []ReplyView{},
	}, nil
}

func (s *service) GetThreadsByBoard(ctx context.Context, board string) ([]ThreadView, error) {
	threads, err := s.repo.ListByBoard(ctx, board, BoardPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get threads: %w", err)
	}

	views := make([]ThreadView, 0, len(threads))
	for _, t := range threads {
		views = append(views, NewThreadView(t, PreviewReplies))
	}
	return views, nil
}

func (s *service) ReportThread(ctx context.Context, board, threadID string) error {
	if err := Require(Field{"thread_id", threadID}); err != nil {
		return err
	}

	if err := s.repo.SetReported(ctx, board, threadID); err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			return err
		}
		return fmt.Errorf("failed to report thread: %w", err)
	}

	s.logger.Infow("Thread reported", "board", board, "thread_id", threadID)
	return nil
}

func (s *service) DeleteThread(ctx context.Context, board, threadID, deletePassword string) error {
	if err := Require(
		Field{"thread_id", threadID},
		Field{"delete_password", deletePassword},
	); err != nil {
		return err
	}

	t, err := s.repo.FindByID(ctx, board, threadID)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			return err
		}
		return fmt.Errorf("failed to get thread: %w", err)
	}

	if t.DeletePassword != deletePassword {
		return ErrIncorrectPassword
	}

	if err := s.repo.Delete(ctx, board, threadID); err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete thread: %w", err)
	}

	s.logger.Infow("Thread deleted", "board", board, "thread_id", threadID, "replies", len(t.Replies))
	return nil
}
