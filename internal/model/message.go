package model

import "time"

// 消息类型
const (
	MessageTypeChat      = "CHAT"
	MessageTypeHeartbeat = "HEARTBEAT"
	MessageTypeGreeting  = "GREETING"
	MessageTypeAnalysis  = "ANALYSIS"
	MessageTypeError     = "ERROR"
)

// GreetingText 连接建立后的欢迎语
const GreetingText = "Hello! I'm your AI Customer Support Assistant. How can I help you today?"

// ChatMessage WebSocket 聊天消息
type ChatMessage struct {
	MessageID string          `json:"messageId"`
	Type      string          `json:"type"` // CHAT, HEARTBEAT, GREETING, ANALYSIS, ERROR
	Content   string          `json:"content"`
	ReplyTo   string          `json:"replyTo,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
