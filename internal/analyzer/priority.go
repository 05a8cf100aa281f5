package analyzer

import "github.com/supportbot/copilot-go/internal/model"

// topicPriority 主题对应的优先级，未列出的主题为 Medium。
// 只看主题不看情绪：负面的账单问题依然是 Medium。
var topicPriority = map[model.Topic]model.Priority{
	model.TopicLoginIssue:       model.PriorityHigh,
	model.TopicPerformanceIssue: model.PriorityHigh,
	model.TopicDataSecurity:     model.PriorityHigh,
	model.TopicFeatureRequest:   model.PriorityLow,
	model.TopicAccountSetup:     model.PriorityLow,
}

// AssignPriority 根据主题分配优先级
func AssignPriority(topic model.Topic) model.Priority {
	if p, ok := topicPriority[topic]; ok {
		return p
	}
	return model.PriorityMedium
}
