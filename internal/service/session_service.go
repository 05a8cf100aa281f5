package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supportbot/copilot-go/internal/config"
	"github.com/supportbot/copilot-go/internal/metrics"
	"github.com/supportbot/copilot-go/internal/model"
	"go.uber.org/zap"
)

// ErrSessionNotFound 会话不存在或已关闭
var ErrSessionNotFound = errors.New("session not found")

// SessionService WebSocket 会话管理服务
type SessionService struct {
	sessions map[string]*model.UserSession // sessionId -> session
	mu       sync.RWMutex
	cfg      config.SessionConfig
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionService 创建会话管理服务，心跳检测需调用 Run 启动
func NewSessionService(cfg config.SessionConfig, m *metrics.Metrics, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: make(map[string]*model.UserSession),
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Register 注册新会话
func (s *SessionService) Register(conn model.Conn, clientIP string) *model.UserSession {
	session := model.NewUserSession(uuid.New().String(), clientIP, conn, s.now())

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SessionsActive.Set(float64(count))
	s.logger.Info("会话注册成功",
		zap.String("sessionId", session.SessionID),
		zap.String("clientIp", clientIP))
	return session
}

// Remove 移除会话并关闭连接
func (s *SessionService) Remove(sessionID string) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return
	}
	_ = session.Conn.Close()
	s.metrics.SessionsActive.Set(float64(count))
	s.logger.Info("会话已移除", zap.String("sessionId", sessionID))
}

// Send 向会话发送消息
func (s *SessionService) Send(sessionID string, message interface{}) error {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}

	if err := session.WriteMessage(message); err != nil {
		s.logger.Error("消息发送失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		go s.Remove(sessionID)
		return err
	}
	return nil
}

// Heartbeat 更新会话心跳
func (s *SessionService) Heartbeat(sessionID string) bool {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	session.Touch(s.now())
	s.logger.Debug("心跳已更新", zap.String("sessionId", sessionID))
	return true
}

// OnlineCount 当前会话数
func (s *SessionService) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Run 周期性检查心跳，直到 ctx 结束
func (s *SessionService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep 清理丢失心跳过多的会话，返回清理数量
func (s *SessionService) sweep() int {
	now := s.now()

	var stale []string
	s.mu.RLock()
	for id, session := range s.sessions {
		missed := session.CheckIdle(now, s.cfg.HeartbeatTimeout)
		switch {
		case missed >= s.cfg.MaxMissedBeats:
			stale = append(stale, id)
		case missed > 0:
			s.logger.Warn("会话心跳丢失",
				zap.String("sessionId", id),
				zap.Int("missedBeats", missed))
		}
	}
	s.mu.RUnlock()

	for _, id := range stale {
		s.logger.Info("清理无效会话", zap.String("sessionId", id))
		s.Remove(id)
	}
	return len(stale)
}

// CloseAll 关闭全部会话
func (s *SessionService) CloseAll() {
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		s.Remove(id)
	}
}
