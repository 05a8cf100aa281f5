package model

// Topic 工单主题
type Topic string

const (
	TopicLoginIssue       Topic = "Login Issue"
	TopicFeatureRequest   Topic = "Feature Request"
	TopicDataExport       Topic = "Data Export"
	TopicBillingQuestion  Topic = "Billing Question"
	TopicPerformanceIssue Topic = "Performance Issue"
	TopicIntegrationHelp  Topic = "Integration Help"
	TopicAccountSetup     Topic = "Account Setup"
	TopicDataSecurity     Topic = "Data Security"
	TopicGeneralInquiry   Topic = "General Inquiry" // 兜底主题
)

var allTopics = []Topic{
	TopicLoginIssue,
	TopicFeatureRequest,
	TopicDataExport,
	TopicBillingQuestion,
	TopicPerformanceIssue,
	TopicIntegrationHelp,
	TopicAccountSetup,
	TopicDataSecurity,
	TopicGeneralInquiry,
}

// AllTopics 返回全部主题（按规则顺序，兜底主题在最后）
func AllTopics() []Topic {
	out := make([]Topic, len(allTopics))
	copy(out, allTopics)
	return out
}

// Valid 是否为已知主题
func (t Topic) Valid() bool {
	for _, known := range allTopics {
		if t == known {
			return true
		}
	}
	return false
}

// Sentiment 情绪
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Priority 优先级
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Classification 一次查询的分类结果
type Classification struct {
	Topic     Topic     `json:"topic"`
	Sentiment Sentiment `json:"sentiment"`
	Priority  Priority  `json:"priority"`
}

// AnalysisResult 分析结果
type AnalysisResult struct {
	Classification   Classification `json:"classification"`
	Response         string         `json:"response"`
	Confidence       int            `json:"confidence"`      // 85-99
	ProcessingTimeMs int            `json:"processing_time"` // 200-699，模拟值
	Details          string         `json:"analysis_details"`
}

// ChatRequest 分析请求
type ChatRequest struct {
	Query *string `json:"query"`
}

// ChatResponse 分析响应
type ChatResponse struct {
	Query string `json:"query"`
	AnalysisResult
	AgentsUsed  []string `json:"agents_used,omitempty"`
	Attachments int      `json:"attachments,omitempty"`
}

// ClassifyRequest 分类请求
type ClassifyRequest struct {
	Text *string `json:"text"`
}

// ClassifyResponse 分类响应
type ClassifyResponse struct {
	Classification Classification `json:"classification"`
	Confidence     int            `json:"confidence"`
	ProcessingTime int64          `json:"processing_time"`
}
