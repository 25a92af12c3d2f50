package reply

import (
	"context"
	"errors"
	"fmt"
	"time"

	"messageboard/internal/app/thread"
	"messageboard/internal/utils"

	"go.uber.org/zap"
)

// Service operates on replies embedded in a thread. Every mutation loads
// the thread, changes it and saves the whole document; two concurrent
// mutations of one thread can lose an update.
type Service interface {
	CreateReply(ctx context.Context, board, threadID, text, deletePassword string) (*thread.ReplyView, error)
	GetThread(ctx context.Context, board, threadID string) (*thread.ThreadView, error)
	ReportReply(ctx context.Context, board, threadID, replyID string) error
	DeleteReply(ctx context.Context, board, threadID, replyID, deletePassword string) error
}

type service struct {
	repo   thread.Repository
	filter utils.TextFilter
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewService(repo thread.Repository, filter utils.TextFilter, logger *zap.Logger) Service {
	if filter == nil {
		filter = utils.NewTextFilter(false)
	}
	return &service{
		repo:   repo,
		filter: filter,
		logger: logger.Sugar(),
		now:    thread.Now,
	}
}

func (s *service) findThread(ctx context.Context, board, threadID string) (*thread.Thread, error) {
	t, err := s.repo.FindByID(ctx, board, threadID)
	if err != nil {
		if errors.Is(err, thread.ErrThreadNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return t, nil
}

func (s *service) CreateReply(ctx context.Context, board, threadID, text, deletePassword string) (*thread.ReplyView, error) {
	text = s.filter(text)
	if err := thread.Require(
		thread.Field{Name: "thread_id", Value: threadID},
		thread.Field{Name: "text", Value: text},
		thread.Field{Name: "delete_password", Value: deletePassword},
	); err != nil {
		return nil, err
	}

	t, err := s.findThread(ctx, board, threadID)
	if err != nil {
		return nil, err
	}

	t.AddReply(thread.Reply{
		Text:           text,
		DeletePassword: deletePassword,
		CreatedOn:      s.now(),
		Reported:       false,
	})

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to save reply: %w", err)
	}

	// Save assigns the id, so read the reply back from the saved document.
	added := &t.Replies[len(t.Replies)-1]
	s.logger.Infow("Reply created", "board", board, "thread_id", t.ID, "reply_id", added.ID)

	view := thread.NewReplyView(added)
	return &view, nil
}

func (s *service) GetThread(ctx context.Context, board, threadID string) (*thread.ThreadView, error) {
	if err := thread.Require(thread.Field{Name: "thread_id", Value: threadID}); err != nil {
		return nil, err
	}

	t, err := s.findThread(ctx, board, threadID)
	if err != nil {
		return nil, err
	}

	view := thread.NewThreadView(t, -1)
	return &view, nil
}

func (s *service) ReportReply(ctx context.Context, board, threadID, replyID string) error {
	if err := thread.Require(
		thread.Field{Name: "thread_id", Value: threadID},
		thread.Field{Name: "reply_id", Value: replyID},
	); err != nil {
		return err
	}

	t, err := s.findThread(ctx, board, threadID)
	if err != nil {
		return err
	}

	r := t.FindReply(replyID)
	if r == nil {
		return thread.ErrReplyNotFound
	}
	r.Reported = true

	if err := s.repo.Save(ctx, t); err != nil {
		return fmt.Errorf("failed to report reply: %w", err)
	}

	s.logger.Infow("Reply reported", "board", board, "thread_id", threadID, "reply_id", replyID)
	return nil
}

func (s *service) DeleteReply(ctx context.Context, board, threadID, replyID, deletePassword string) error {
	if err := thread.Require(
		thread.Field{Name: "thread_id", Value: threadID},
		thread.Field{Name: "reply_id", Value: replyID},
		thread.Field{Name: "delete_password", Value: deletePassword},
	); err != nil {
		return err
	}

	t, err := s.findThread(ctx, board, threadID)
	if err != nil {
		return err
	}

	r := t.FindReply(replyID)
	if r == nil {
		return thread.ErrReplyNotFound
	}
	if r.DeletePassword != deletePassword {
		return thread.ErrIncorrectPassword
	}
	r.Text = thread.DeletedReplyText

	if err := s.repo.Save(ctx, t); err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}

	s.logger.Infow("Reply deleted", "board", board, "thread_id", threadID, "reply_id", replyID)
	return nil
}
