package thread

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	ResponseReported          = "reported"
	ResponseSuccess           = "success"
	ResponseIncorrectPassword = "incorrect password"
)

type Handler interface {
	CreateThread(c *gin.Context)
	GetThreadsByBoard(c *gin.Context)
	ReportThread(c *gin.Context)
	DeleteThread(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger}
}

// @Summary Create thread
// @Description Start a new thread on a board
// @Tags Thread
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param board path string true "Board name"
// @Param request body CreateThreadRequest true "Thread text and delete password"
// @Success 200 {object} CreatedThread
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/threads/{board} [post]
func (h *handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := BindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required fields"})
		return
	}

	created, err := h.service.CreateThread(c.Request.Context(), c.Param("board"), req.Text, req.DeletePassword)
	if err != nil {
		RespondError(c, h.logger, err, "an error occurred while creating the thread")
		return
	}

	c.JSON(http.StatusOK, created)
}

// @Summary List threads
// @Description The 10 most recently bumped threads of a board, each with its 3 latest replies
// @Tags Thread
// @Produce json
// @Param board path string true "Board name"
// @Success 200 {array} ThreadView
// @Failure 500 {object} ErrorResponse
// @Router /api/threads/{board} [get]
func (h *handler) GetThreadsByBoard(c *gin.Context) {
	threads, err := h.service.GetThreadsByBoard(c.Request.Context(), c.Param("board"))
	if err != nil {
		RespondError(c, h.logger, err, "an error occurred while fetching threads")
		return
	}

	c.JSON(http.StatusOK, threads)
}

// @Summary Report thread
// @Tags Thread
// @Accept json,x-www-form-urlencoded
// @Produce plain
// @Param board path string true "Board name"
// @Param request body ReportThreadRequest true "Thread to report"
// @Success 200 {string} string "reported"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/threads/{board} [put]
func (h *handler) ReportThread(c *gin.Context) {
	var req ReportThreadRequest
	if err := BindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field: thread_id"})
		return
	}

	if err := h.service.ReportThread(c.Request.Context(), c.Param("board"), req.ThreadID); err != nil {
		RespondError(c, h.logger, err, "an error occurred while reporting the thread")
		return
	}

	c.String(http.StatusOK, ResponseReported)
}

// @Summary Delete thread
// @Description Deletes the thread and all of its replies when the password matches
// @Tags Thread
// @Accept json,x-www-form-urlencoded
// @Produce plain
// @Param board path string true "Board name"
// @Param request body DeleteThreadRequest true "Thread id and delete password"
// @Success 200 {string} string "success or incorrect password"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/threads/{board} [delete]
func (h *handler) DeleteThread(c *gin.Context) {
	var req DeleteThreadRequest
	if err := BindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required fields"})
		return
	}

	if err := h.service.DeleteThread(c.Request.Context(), c.Param("board"), req.ThreadID, req.DeletePassword); err != nil {
		RespondError(c, h.logger, err, "an error occurred while deleting the thread")
		return
	}

	c.String(http.StatusOK, ResponseSuccess)
}

// BindRequest binds a JSON or form body. net/http only parses form bodies
// for POST, PUT and PATCH, so a form encoded DELETE body is parsed here.
func BindRequest(c *gin.Context, obj any) error {
	req := c.Request
	if req.Method == http.MethodDelete && c.ContentType() == binding.MIMEPOSTForm && req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return err
		}
		req.PostForm = values
		req.Form = values
	}
	return c.ShouldBind(obj)
}

// RespondError maps service errors onto the board API responses. A wrong
// password is a 200 with a plain text body so that the status code does not
// distinguish it from success.
func RespondError(c *gin.Context, logger *zap.Logger, err error, internalMsg string) {
	if msg, ok := ValidationMessage(err); ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}

	switch {
	case errors.Is(err, ErrIncorrectPassword):
		c.String(http.StatusOK, ResponseIncorrectPassword)
	case errors.Is(err, ErrThreadNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrThreadNotFound.Error()})
	case errors.Is(err, ErrReplyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrReplyNotFound.Error()})
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMsg})
	}
}
