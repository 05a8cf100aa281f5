package analyzer

import "github.com/supportbot/copilot-go/internal/model"

// topicSentiment 主题隐含的默认情绪，未列出的主题为 Neutral
var topicSentiment = map[model.Topic]model.Sentiment{
	model.TopicFeatureRequest:   model.SentimentPositive,
	model.TopicAccountSetup:     model.SentimentPositive,
	model.TopicPerformanceIssue: model.SentimentNegative,
}

// sentimentOverrides 关键词覆盖规则，正面关键词先于负面关键词检查
var sentimentOverrides = []keywordRule[model.Sentiment]{
	{keywords: []string{"great", "love", "awesome", "thank"}, result: model.SentimentPositive},
	{keywords: []string{"issue", "problem", "error", "wrong"}, result: model.SentimentNegative},
}

// ClassifySentiment 先取主题默认情绪，再用关键词覆盖
func ClassifySentiment(query string, topic model.Topic) model.Sentiment {
	if s, ok := firstMatch(sentimentOverrides, normalize(query)); ok {
		return s
	}
	if s, ok := topicSentiment[topic]; ok {
		return s
	}
	return model.SentimentNeutral
}
