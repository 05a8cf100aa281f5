// Package analyzer 工单分析流水线：主题 → 情绪 → 优先级 → 回复。
// 各阶段均为纯函数，无共享可变状态，可被并发调用。
package analyzer

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/supportbot/copilot-go/internal/model"
)

// 模拟指标范围（闭区间）
const (
	MinConfidence       = 85
	MaxConfidence       = 99
	MinProcessingTimeMs = 200
	MaxProcessingTimeMs = 699
)

var stages = []string{
	"TopicClassifier",
	"SentimentClassifier",
	"PriorityAssigner",
	"ResponseSynthesizer",
}

// Stages 流水线阶段名称（按执行顺序）
func Stages() []string {
	out := make([]string, len(stages))
	copy(out, stages)
	return out
}

// RandomSource 随机数来源，IntRange 返回 [lo, hi] 内的整数
type RandomSource interface {
	IntRange(lo, hi int) int
}

type globalRand struct{}

// math/rand/v2 的顶层函数是并发安全的
func (globalRand) IntRange(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

// SeededSource 固定种子的随机数来源，不是并发安全的
type SeededSource struct {
	r *rand.Rand
}

// NewSeededSource 创建固定种子的随机数来源
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

// IntRange 实现 RandomSource
func (s *SeededSource) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

// Analyzer 分析流水线
type Analyzer struct {
	rand RandomSource
}

// Option 配置项
type Option func(*Analyzer)

// WithRandomSource 替换模拟指标使用的随机数来源
func WithRandomSource(src RandomSource) Option {
	return func(a *Analyzer) {
		if src != nil {
			a.rand = src
		}
	}
}

// New 创建分析流水线
func New(opts ...Option) *Analyzer {
	a := &Analyzer{rand: globalRand{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Classify 只做分类（主题、情绪、优先级）
func (a *Analyzer) Classify(query string) model.Classification {
	topic := ClassifyTopic(query)
	return model.Classification{
		Topic:     topic,
		Sentiment: ClassifySentiment(query, topic),
		Priority:  AssignPriority(topic),
	}
}

// Confidence 抽取一个模拟置信度，范围 [MinConfidence, MaxConfidence]
func (a *Analyzer) Confidence() int {
	return a.rand.IntRange(MinConfidence, MaxConfidence)
}

// BuildAnalysis 流水线入口，任何字符串输入都有确定的输出
func (a *Analyzer) BuildAnalysis(query string) model.AnalysisResult {
	c := a.Classify(query)
	return model.AnalysisResult{
		Classification:   c,
		Response:         SynthesizeResponse(c.Topic),
		Confidence:       a.Confidence(),
		ProcessingTimeMs: a.rand.IntRange(MinProcessingTimeMs, MaxProcessingTimeMs),
		Details:          details(c),
	}
}

var defaultAnalyzer = New()

// BuildAnalysis 使用默认随机数来源分析查询
func BuildAnalysis(query string) model.AnalysisResult {
	return defaultAnalyzer.BuildAnalysis(query)
}

func details(c model.Classification) string {
	return fmt.Sprintf("Query analyzed using natural language processing. Classified as %s with %s sentiment. "+
		"Priority determined based on urgency indicators and topic classification.",
		strings.ToLower(string(c.Topic)), strings.ToLower(string(c.Sentiment)))
}
