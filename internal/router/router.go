package router

import (
	"messageboard/internal/app/board"
	"messageboard/internal/app/health"
	"messageboard/internal/app/reply"
	"messageboard/internal/app/thread"
	"messageboard/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger, allowedOrigins []string) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(allowedOrigins))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterThreadRoutes(handler thread.Handler) {
	thread.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterReplyRoutes(handler reply.Handler) {
	reply.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
