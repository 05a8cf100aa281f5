package server

import (
	"github.com/gin-gonic/gin"
	"github.com/supportbot/copilot-go/internal/config"
	"github.com/supportbot/copilot-go/internal/handler"
	"github.com/supportbot/copilot-go/internal/metrics"
	"github.com/supportbot/copilot-go/internal/middleware"
	"github.com/supportbot/copilot-go/internal/service"
	"go.uber.org/zap"
)

// Deps 路由依赖
type Deps struct {
	Config          *config.Config
	AnalysisService *service.AnalysisService
	TicketService   *service.TicketService
	SessionService  *service.SessionService
	Metrics         *metrics.Metrics
	Logger          *zap.Logger
}

// NewRouter 初始化路由
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = handler.MaxUploadMemory
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORS(d.Config.CORS.AllowedOrigins),
	)

	apiHandler := handler.NewAPIHandler(d.Config.Server.Name, d.SessionService, d.TicketService, d.Logger)
	analysisHandler := handler.NewAnalysisHandler(d.AnalysisService, d.Logger)
	wsHandler := handler.NewWebSocketHandler(d.SessionService, d.AnalysisService, d.Config.CORS.AllowedOrigins, d.Logger)

	// API 路由
	api := r.Group("/api")
	{
		api.GET("/", apiHandler.Health)
		api.GET("/health", apiHandler.Health)
		api.GET("/tickets", apiHandler.ListTickets)
		api.POST("/chat", analysisHandler.Chat)
		api.POST("/classify", analysisHandler.Classify)
	}

	r.GET("/ws", wsHandler.HandleWebSocket)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	return r
}
