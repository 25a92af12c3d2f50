package thread

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the thread document store. Every thread lookup is scoped to
// a board; a thread id on the wrong board is reported as ErrThreadNotFound.
type Repository interface {
	Create(ctx context.Context, t *Thread) error
	FindByID(ctx context.Context, board, id string) (*Thread, error)
	ListByBoard(ctx context.Context, board string, limit int) ([]*Thread, error)
	// Save writes the whole thread document, including all of its replies.
	// Replies without an id get one assigned.
	Save(ctx context.Context, t *Thread) error
	SetReported(ctx context.Context, board, id string) error
	Delete(ctx context.Context, board, id string) error
	ListBoards(ctx context.Context) ([]BoardSummary, error)
	Ping(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func repliesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("replies.position ASC")
}

func (r *repository) Create(ctx context.Context, t *Thread) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	assignReplyKeys(t, uuid.NewString)
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, board, id string) (*Thread, error) {
	var t Thread
	err := r.db.WithContext(ctx).
		Preload("Replies", repliesInOrder).
		Where("id = ? AND board = ?", id, board).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrThreadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListByBoard(ctx context.Context, board string, limit int) ([]*Thread, error) {
	var threads []*Thread
	err := r.db.WithContext(ctx).
		Preload("Replies", repliesInOrder).
		Where("board = ?", board).
		Order("bumped_on DESC").
		Limit(limit).
		Find(&threads).Error
	return threads, err
}

func (r *repository) Save(ctx context.Context, t *Thread) error {
	assignReplyKeys(t, uuid.NewString)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Thread{}).
			Where("id = ?", t.ID).
			Updates(map[string]interface{}{
				"text":      t.Text,
				"reported":  t.Reported,
				"bumped_on": t.BumpedOn,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrThreadNotFound
		}

		if len(t.Replies) == 0 {
			return nil
		}
		// Replies are append-only, so an upsert on id covers both new and changed ones.
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "reported"}),
		}).Create(&t.Replies).Error
	})
}

func (r *repository) SetReported(ctx context.Context, board, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Thread{}).
		Where("id = ? AND board = ?", id, board).
		Update("reported", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrThreadNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, board, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id IN (?)", tx.Model(&Thread{}).Select("id").Where("id = ? AND board = ?", id, board)).
			Delete(&Reply{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND board = ?", id, board).Delete(&Thread{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrThreadNotFound
		}
		return nil
	})
}

func (r *repository) ListBoards(ctx context.Context) ([]BoardSummary, error) {
	var boards []BoardSummary
	err := r.db.WithContext(ctx).
		Model(&Thread{}).
		Select("board AS name, COUNT(*) AS thread_count, MAX(bumped_on) AS bumped_on").
		Group("board").
		Order("MAX(bumped_on) DESC").
		Scan(&boards).Error
	return boards, err
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// assignReplyKeys fills in ids, owner and position for replies that have
// not been stored yet.
func assignReplyKeys(t *Thread, newID func() string) {
	for i := range t.Replies {
		if t.Replies[i].ID == "" {
			t.Replies[i].ID = newID()
		}
		t.Replies[i].ThreadID = t.ID
		t.Replies[i].Position = i
	}
}
