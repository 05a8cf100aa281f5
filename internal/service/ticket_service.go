package service

import (
	"context"
	"fmt"

	"github.com/supportbot/copilot-go/internal/model"
	"github.com/supportbot/copilot-go/internal/store"
	"go.uber.org/zap"
)

// TicketService 历史工单服务
type TicketService struct {
	store  store.TicketStore
	logger *zap.Logger
}

// NewTicketService 创建历史工单服务
func NewTicketService(s store.TicketStore, logger *zap.Logger) *TicketService {
	return &TicketService{
		store:  s,
		logger: logger,
	}
}

// List 列出全部工单，原样返回
func (s *TicketService) List(ctx context.Context) ([]model.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("读取工单失败", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

// SeedDefaults 写入内置示例工单
func (s *TicketService) SeedDefaults(ctx context.Context) error {
	tickets := store.DefaultTickets()
	if err := s.store.Seed(ctx, tickets); err != nil {
		return fmt.Errorf("初始化工单失败: %w", err)
	}
	s.logger.Info("示例工单已写入", zap.Int("count", len(tickets)))
	return nil
}
