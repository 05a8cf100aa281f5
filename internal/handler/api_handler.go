package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supportbot/copilot-go/internal/service"
	"go.uber.org/zap"
)

// APIHandler 通用 API 处理器
type APIHandler struct {
	serviceName    string
	sessionService *service.SessionService
	ticketService  *service.TicketService
	logger         *zap.Logger
}

// NewAPIHandler 创建通用 API 处理器
func NewAPIHandler(serviceName string, sessionService *service.SessionService, ticketService *service.TicketService, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		serviceName:    serviceName,
		sessionService: sessionService,
		ticketService:  ticketService,
		logger:         logger,
	}
}

// Health 健康检查
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"message":         "Backend API is running",
		"service":         h.serviceName,
		"online_sessions": h.sessionService.OnlineCount(),
	})
}

// ListTickets 历史工单列表
func (h *APIHandler) ListTickets(c *gin.Context) {
	tickets, err := h.ticketService.List(c.Request.Context())
	if err != nil {
		h.logger.Warn("工单列表不可用", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}
