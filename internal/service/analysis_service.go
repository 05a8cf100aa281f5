package service

import (
	"time"

	"github.com/supportbot/copilot-go/internal/analyzer"
	"github.com/supportbot/copilot-go/internal/metrics"
	"github.com/supportbot/copilot-go/internal/model"
	"go.uber.org/zap"
)

// AnalysisService 工单分析服务：在分析流水线外包一层日志和指标
type AnalysisService struct {
	analyzer *analyzer.Analyzer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAnalysisService 创建工单分析服务
func NewAnalysisService(a *analyzer.Analyzer, m *metrics.Metrics, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		analyzer: a,
		metrics:  m,
		logger:   logger,
	}
}

// Analyze 完整分析一条查询
func (s *AnalysisService) Analyze(query string) model.AnalysisResult {
	start := time.Now()
	result := s.analyzer.BuildAnalysis(query)
	elapsed := time.Since(start)

	c := result.Classification
	s.metrics.ObserveAnalysis(string(c.Topic), string(c.Sentiment), string(c.Priority), elapsed, result.ProcessingTimeMs)

	s.logger.Info("查询分析完成",
		zap.Int("queryLen", len(query)),
		zap.String("topic", string(c.Topic)),
		zap.String("sentiment", string(c.Sentiment)),
		zap.String("priority", string(c.Priority)),
		zap.Int("confidence", result.Confidence),
		zap.Duration("elapsed", elapsed))

	return result
}

// Classify 只分类，不生成回复
func (s *AnalysisService) Classify(text string) model.Classification {
	c := s.analyzer.Classify(text)
	s.logger.Debug("查询分类完成",
		zap.String("topic", string(c.Topic)),
		zap.String("sentiment", string(c.Sentiment)),
		zap.String("priority", string(c.Priority)))
	return c
}

// Confidence 模拟置信度
func (s *AnalysisService) Confidence() int {
	return s.analyzer.Confidence()
}

// AgentsUsed 参与分析的阶段
func (s *AnalysisService) AgentsUsed() []string {
	return analyzer.Stages()
}
