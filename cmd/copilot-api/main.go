package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/supportbot/copilot-go/internal/analyzer"
	"github.com/supportbot/copilot-go/internal/config"
	"github.com/supportbot/copilot-go/internal/metrics"
	"github.com/supportbot/copilot-go/internal/server"
	"github.com/supportbot/copilot-go/internal/service"
	"github.com/supportbot/copilot-go/internal/store"
	"github.com/supportbot/copilot-go/pkg/logger"
	"github.com/supportbot/copilot-go/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/copilot-api.yaml", "配置文件路径")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("加载 .env 失败: %v", err)
	}

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("copilot-api 服务启动中...", zap.String("config", *configPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化工单存储
	ticketStore, closeStore, err := newTicketStore(ctx, cfg)
	if err != nil {
		zapLogger.Fatal("初始化工单存储失败", zap.Error(err))
	}
	defer closeStore()

	m := metrics.New()

	// 初始化服务
	analysisService := service.NewAnalysisService(analyzer.New(), m, zapLogger)
	ticketService := service.NewTicketService(ticketStore, zapLogger)
	sessionService := service.NewSessionService(cfg.Session, m, zapLogger)

	if cfg.Tickets.Backend == config.TicketBackendMemory || cfg.Tickets.Seed {
		if err := ticketService.SeedDefaults(ctx); err != nil {
			zapLogger.Fatal("初始化工单失败", zap.Error(err))
		}
	}

	go sessionService.Run(ctx)
	defer sessionService.CloseAll()

	gin.SetMode(cfg.Server.Mode)
	router := server.NewRouter(server.Deps{
		Config:          cfg,
		AnalysisService: analysisService,
		TicketService:   ticketService,
		SessionService:  sessionService,
		Metrics:         m,
		Logger:          zapLogger,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := server.New(addr, router, cfg.Server.ShutdownTimeout, zapLogger)
	if err := srv.ListenAndRun(ctx); err != nil {
		zapLogger.Error("服务异常退出", zap.Error(err))
	}
}

// newTicketStore 按配置选择工单存储后端
func newTicketStore(ctx context.Context, cfg *config.Config) (store.TicketStore, func(), error) {
	if cfg.Tickets.Backend != config.TicketBackendRedis {
		return store.NewMemoryTicketStore(), func() {}, nil
	}

	client, err := redis.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return store.NewRedisTicketStore(client, cfg.Tickets.Key), func() { _ = client.Close() }, nil
}
