package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/supportbot/copilot-go/internal/model"
)

// TicketStore 历史工单存储
type TicketStore interface {
	List(ctx context.Context) ([]model.Ticket, error)
	Seed(ctx context.Context, tickets []model.Ticket) error
}

// MemoryTicketStore 内存工单存储
type MemoryTicketStore struct {
	tickets []model.Ticket
	mu      sync.RWMutex
}

// NewMemoryTicketStore 创建内存工单存储
func NewMemoryTicketStore() *MemoryTicketStore {
	return &MemoryTicketStore{}
}

// List 列出全部工单
func (s *MemoryTicketStore) List(_ context.Context) ([]model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out, nil
}

// Seed 替换全部工单
func (s *MemoryTicketStore) Seed(_ context.Context, tickets []model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = make([]model.Ticket, len(tickets))
	copy(s.tickets, tickets)
	return nil
}

// RedisTicketStore Redis 工单存储，工单以 JSON 形式存放在一个 list 中
type RedisTicketStore struct {
	client *redis.Client
	key    string
}

// NewRedisTicketStore 创建 Redis 工单存储
func NewRedisTicketStore(client *redis.Client, key string) *RedisTicketStore {
	return &RedisTicketStore{client: client, key: key}
}

// List 列出全部工单
func (s *RedisTicketStore) List(ctx context.Context) ([]model.Ticket, error) {
	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取工单失败: %w", err)
	}

	tickets := make([]model.Ticket, 0, len(items))
	for i, item := range items {
		var t model.Ticket
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, fmt.Errorf("解析工单 %d 失败: %w", i, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// Seed 原子地替换全部工单
func (s *RedisTicketStore) Seed(ctx context.Context, tickets []model.Ticket) error {
	values := make([]interface{}, 0, len(tickets))
	for _, t := range tickets {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("序列化工单 %s 失败: %w", t.TicketNumber, err)
		}
		values = append(values, data)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("写入工单失败: %w", err)
	}
	return nil
}
