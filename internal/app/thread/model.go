package thread

import "time"

const (
	// DeletedReplyText replaces the text of a reply removed by its author.
	DeletedReplyText = "[deleted]"

	// BoardPageSize is the number of threads returned by a board listing.
	BoardPageSize = 10
	// PreviewReplies is the number of trailing replies shown per thread in a board listing.
	PreviewReplies = 3
)

// Thread is the stored document: a top level post with its replies embedded
// in insertion order.
type Thread struct {
	ID             string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Board          string    `json:"board" gorm:"not null;index:idx_threads_board_bumped,priority:1" bson:"board"`
	Text           string    `json:"text" gorm:"type:text;not null" bson:"text"`
	DeletePassword string    `json:"-" gorm:"not null" bson:"delete_password"`
	Reported       bool      `json:"reported" gorm:"not null;default:false" bson:"reported"`
	CreatedOn      time.Time `json:"created_on" gorm:"not null" bson:"created_on"`
	BumpedOn       time.Time `json:"bumped_on" gorm:"not null;index:idx_threads_board_bumped,priority:2,sort:desc" bson:"bumped_on"`
	Replies        []Reply   `json:"replies" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" bson:"replies"`
}

// Reply is owned by exactly one Thread and is never removed from it.
type Reply struct {
	ID             string    `json:"_id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	ThreadID       string    `json:"-" gorm:"type:varchar(36);not null;index:idx_replies_thread_position,priority:1" bson:"-"`
	Position       int       `json:"-" gorm:"not null;index:idx_replies_thread_position,priority:2" bson:"-"`
	Text           string    `json:"text" gorm:"type:text;not null" bson:"text"`
	DeletePassword string    `json:"-" gorm:"not null" bson:"delete_password"`
	Reported       bool      `json:"reported" gorm:"not null;default:false" bson:"reported"`
	CreatedOn      time.Time `json:"created_on" gorm:"not null" bson:"created_on"`
}

// FindReply returns the reply with the given id, or nil.
func (t *Thread) FindReply(id string) *Reply {
	for i := range t.Replies {
		if t.Replies[i].ID == id {
			return &t.Replies[i]
		}
	}
	return nil
}

// AddReply appends r and moves the bump marker to its creation time.
func (t *Thread) AddReply(r Reply) *Reply {
	r.ThreadID = t.ID
	r.Position = len(t.Replies)
	t.Replies = append(t.Replies, r)
	t.BumpedOn = r.CreatedOn
	return &t.Replies[len(t.Replies)-1]
}

// BoardSummary describes a board derived from the threads stored on it.
type BoardSummary struct {
	Name        string    `json:"name" bson:"_id"`
	ThreadCount int64     `json:"thread_count" bson:"thread_count"`
	BumpedOn    time.Time `json:"bumped_on" bson:"bumped_on"`
}

// ThreadView is a thread as shown to clients, without delete password or
// report flag.
type ThreadView struct {
	ID        string      `json:"_id"`
	Board     string      `json:"board"`
	Text      string      `json:"text"`
	CreatedOn time.Time   `json:"created_on"`
	BumpedOn  time.Time   `json:"bumped_on"`
	Replies   []ReplyView `json:"replies"`
}

type ReplyView struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

// CreatedThread is the response to a thread creation.
type CreatedThread struct {
	ID        string      `json:"_id"`
	Text      string      `json:"text"`
	CreatedOn time.Time   `json:"created_on"`
	BumpedOn  time.Time   `json:"bumped_on"`
	Replies   []ReplyView `json:"replies"`
}

type CreateThreadRequest struct {
	Text           string `json:"text" form:"text" binding:"required"`
	DeletePassword string `json:"delete_password" form:"delete_password" binding:"required"`
}

type ReportThreadRequest struct {
	ThreadID string `json:"thread_id" form:"thread_id" binding:"required"`
}

type DeleteThreadRequest struct {
	ThreadID       string `json:"thread_id" form:"thread_id" binding:"required"`
	DeletePassword string `json:"delete_password" form:"delete_password" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewThreadView strips sensitive fields and keeps at most the last
// replyLimit replies. A negative replyLimit keeps all of them.
func NewThreadView(t *Thread, replyLimit int) ThreadView {
	replies := t.Replies
	if replyLimit >= 0 && len(replies) > replyLimit {
		replies = replies[len(replies)-replyLimit:]
	}

	views := make([]ReplyView, 0, len(replies))
	for _, r := range replies {
		views = append(views, NewReplyView(&r))
	}

	return ThreadView{
		ID:        t.ID,
		Board:     t.Board,
		Text:      t.Text,
		CreatedOn: t.CreatedOn,
		BumpedOn:  t.BumpedOn,
		Replies:   views,
	}
}

func NewReplyView(r *Reply) ReplyView {
	return ReplyView{ID: r.ID, Text: r.Text, CreatedOn: r.CreatedOn}
}
