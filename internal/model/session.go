package model

import (
	"sync"
	"time"
)

// Conn 会话底层连接（*websocket.Conn 满足该接口）
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// UserSession 聊天会话
type UserSession struct {
	SessionID     string
	ClientIP      string
	Conn          Conn
	ConnectedAt   time.Time
	lastHeartbeat time.Time
	missedBeats   int
	mu            sync.Mutex // 保护心跳字段和连接写入
}

// NewUserSession 创建会话
func NewUserSession(sessionID, clientIP string, conn Conn, now time.Time) *UserSession {
	return &UserSession{
		SessionID:     sessionID,
		ClientIP:      clientIP,
		Conn:          conn,
		ConnectedAt:   now,
		lastHeartbeat: now,
	}
}

// Touch 记录一次心跳
func (s *UserSession) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastHeartbeat = now
	s.missedBeats = 0
}

// CheckIdle 超过 timeout 未收到心跳时累加丢失次数，返回当前丢失次数
func (s *UserSession) CheckIdle(now time.Time, timeout time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastHeartbeat) > timeout {
		s.missedBeats++
	}
	return s.missedBeats
}

// MissedBeats 丢失心跳次数
func (s *UserSession) MissedBeats() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missedBeats
}

// WriteMessage 向连接写入消息（线程安全）
func (s *UserSession) WriteMessage(message interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteJSON(message)
}
