package analyzer

import "github.com/supportbot/copilot-go/internal/model"

// topicRules 主题规则，顺序即优先级。
// "data" 很宽泛，必须排在登录、功能建议之后，
// 否则 "reset my login data" 会被误判为数据导出。
var topicRules = []keywordRule[model.Topic]{
	{keywords: []string{"login", "password", "access"}, result: model.TopicLoginIssue},
	{keywords: []string{"feature", "request", "suggest"}, result: model.TopicFeatureRequest},
	{keywords: []string{"export", "download", "data"}, result: model.TopicDataExport},
	{keywords: []string{"bill", "payment", "price"}, result: model.TopicBillingQuestion},
	{keywords: []string{"slow", "performance", "lag"}, result: model.TopicPerformanceIssue},
	{keywords: []string{"api", "integration", "connect"}, result: model.TopicIntegrationHelp},
	{keywords: []string{"setup", "account", "new"}, result: model.TopicAccountSetup},
	{keywords: []string{"security", "privacy", "safe"}, result: model.TopicDataSecurity},
}

// ClassifyTopic 根据关键词规则判断主题，未命中返回 General Inquiry
func ClassifyTopic(query string) model.Topic {
	if topic, ok := firstMatch(topicRules, normalize(query)); ok {
		return topic
	}
	return model.TopicGeneralInquiry
}
