package reply

import (
	"net/http"

	"messageboard/internal/app/thread"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	CreateReply(c *gin.Context)
	GetThread(c *gin.Context)
	ReportReply(c *gin.Context)
	DeleteReply(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger}
}

// @Summary Create reply
// @Description Append a reply to a thread and bump it
// @Tags Reply
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param board path string true "Board name"
// @Param request body CreateReplyRequest true "Reply"
// @Success 200 {object} thread.ReplyView
// @Failure 400 {object} thread.ErrorResponse
// @Failure 404 {object} thread.ErrorResponse
// @Failure 500 {object} thread.ErrorResponse
// @Router /api/replies/{board} [post]
func (h *handler) CreateReply(c *gin.Context) {
	var req CreateReplyRequest
	if err := thread.BindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, thread.ErrorResponse{Error: "missing required fields"})
		return
	}

	created, err := h.service.CreateReply(c.Request.Context(), c.Param("board"), req.ThreadID, req.Text, req.DeletePassword)
	if err != nil {
		thread.RespondError(c, h.logger, err, "an error occurred while adding the reply")
		return
	}

	c.JSON(http.StatusOK, created)
}

// @Summary Get thread with replies
// @Description A single thread with every reply in order
// @Tags Reply
// @Produce json
// @Param board path string true "Board name"
// @Param thread_id query string true "Thread id"
// @Success 200 {object} thread.ThreadView
// @Failure 400 {object} thread.ErrorResponse
// @Failure 404 {object} thread.ErrorResponse
// @Failure 500 {object} thread.ErrorResponse
// @Router /api/replies/{board} [get]
func (h *handler) GetThread(c *gin.Context) {
	threadID := c.Query("thread_id")
	if threadID == "" {
		c.JSON(http.StatusBadRequest, thread.ErrorResponse{Error: "missing required field: thread_id"})
		return
	}

	view, err := h.service.GetThread(c.Request.Context(), c.Param("board"), threadID)
	if err != nil {
		thread.RespondError(c, h.logger, err, "an error occurred while retrieving replies")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Report reply
// @Tags Reply
// @Accept json,x-www-form-urlencoded
// @Produce plain
// @Param board path string true "Board name"
// @Param request body ReportReplyRequest true "Reply to report"
// @Success 200 {string} string "reported"
// @Failure 400 {object} thread.ErrorResponse
// @Failure 404 {object} thread.ErrorResponse
// @Failure 500 {object} thread.ErrorResponse
// @Router /api/replies/{board} [put]
func (h *handler) ReportReply(c *gin.Context) {
	var req ReportReplyRequest
	if err := thread.BindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, thread.ErrorResponse{Error: "missing required fields"})
		return
	}

	if err := h.service.ReportReply(c.Request.Context(), c.Param("board"), req.ThreadID, req.ReplyID); err != nil {
		thread.RespondError(c, h.logger, err, "an error occurred while reporting the reply")
		return
	}

	c.String(http.StatusOK, thread.ResponseReported)
}

// @Summary Delete reply
// @Description Replaces the reply text with [deleted] when the password matches
// @Tags Reply
// @Accept json,x-www-form-urlencoded
// @Produce plain
// @Param board path string true "Board name"
// @Param request body DeleteReplyRequest true "Reply id and delete password"
// @Success 200 {string} string "success or incorrect password"
// @Failure 400 {object} thread.ErrorResponse
// @Failure 404 {object} thread.ErrorResponse
// @Failure 500 {object} thread.ErrorResponse
// @Router /api/replies/{board} [delete]
func (h *handler) DeleteReply(c *gin.Context) {
	var req DeleteReplyRequest
	if err := thread.BindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, thread.ErrorResponse{Error: "missing required fields"})
		return
	}

	err := h.service.DeleteReply(c.Request.Context(), c.Param("board"), req.ThreadID, req.ReplyID, req.DeletePassword)
	if err != nil {
		thread.RespondError(c, h.logger, err, "an error occurred while deleting the reply")
		return
	}

	c.String(http.StatusOK, thread.ResponseSuccess)
}
