package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/supportbot/copilot-go/internal/model"
	"github.com/supportbot/copilot-go/internal/service"
	"go.uber.org/zap"
)

// WebSocketHandler WebSocket 聊天处理器
type WebSocketHandler struct {
	upgrader        websocket.Upgrader
	sessionService  *service.SessionService
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

// NewWebSocketHandler 创建 WebSocket 聊天处理器，allowedOrigins 为空时不校验 Origin
func NewWebSocketHandler(sessionService *service.SessionService, analysisService *service.AnalysisService, allowedOrigins []string, logger *zap.Logger) *WebSocketHandler {
	allowSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowSet[o] = struct{}{}
	}

	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allowSet) == 0 {
					return true
				}
				_, ok := allowSet[r.Header.Get("Origin")]
				return ok
			},
		},
		sessionService:  sessionService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// HandleWebSocket WebSocket 连接入口
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}

	session := h.sessionService.Register(conn, c.ClientIP())
	defer h.sessionService.Remove(session.SessionID)

	h.reply(session.SessionID, model.ChatMessage{
		Type:    model.MessageTypeGreeting,
		Content: model.GreetingText,
	})

	// 消息循环
	for {
		var msg model.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket 读取错误",
					zap.String("sessionId", session.SessionID),
					zap.Error(err))
			}
			break
		}
		h.handleMessage(session.SessionID, &msg)
	}

	h.logger.Info("WebSocket 连接断开", zap.String("sessionId", session.SessionID))
}

// handleMessage 处理客户端消息，每条 CHAT 都是独立的一次分析。
// 任何入站消息都视为心跳。
func (h *WebSocketHandler) handleMessage(sessionID string, msg *model.ChatMessage) {
	h.sessionService.Heartbeat(sessionID)

	switch msg.Type {
	case model.MessageTypeChat:
		result := h.analysisService.Analyze(msg.Content)
		h.reply(sessionID, model.ChatMessage{
			Type:     model.MessageTypeAnalysis,
			Content:  result.Response,
			ReplyTo:  msg.MessageID,
			Analysis: &result,
		})

	case model.MessageTypeHeartbeat:
		h.logger.Debug("收到心跳", zap.String("sessionId", sessionID))

	default:
		h.logger.Warn("未知消息类型",
			zap.String("sessionId", sessionID),
			zap.String("type", msg.Type))
		h.reply(sessionID, model.ChatMessage{
			Type:    model.MessageTypeError,
			Content: "unknown message type: " + msg.Type,
			ReplyTo: msg.MessageID,
		})
	}
}

func (h *WebSocketHandler) reply(sessionID string, msg model.ChatMessage) {
	msg.MessageID = uuid.New().String()
	msg.SessionID = sessionID
	msg.Timestamp = time.Now()
	if err := h.sessionService.Send(sessionID, msg); err != nil {
		h.logger.Warn("回复发送失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
	}
}
