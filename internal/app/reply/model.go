package reply

type CreateReplyRequest struct {
	ThreadID       string `json:"thread_id" form:"thread_id" binding:"required"`
	Text           string `json:"text" form:"text" binding:"required"`
	DeletePassword string `json:"delete_password" form:"delete_password" binding:"required"`
}

type ReportReplyRequest struct {
	ThreadID string `json:"thread_id" form:"thread_id" binding:"required"`
	ReplyID  string `json:"reply_id" form:"reply_id" binding:"required"`
}

type DeleteReplyRequest struct {
	ThreadID       string `json:"thread_id" form:"thread_id" binding:"required"`
	ReplyID        string `json:"reply_id" form:"reply_id" binding:"required"`
	DeletePassword string `json:"delete_password" form:"delete_password" binding:"required"`
}
