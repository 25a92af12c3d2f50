package board

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	GetAllBoards(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger}
}

// @Summary Get all boards
// @Description Boards that have at least one thread, most recently bumped first
// @Tags Board
// @Produce json
// @Success 200 {object} BoardListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/boards [get]
func (h *handler) GetAllBoards(c *gin.Context) {
	boards, err := h.service.GetAllBoards(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list boards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch boards"})
		return
	}
	c.JSON(http.StatusOK, BoardListResponse{Boards: boards})
}
