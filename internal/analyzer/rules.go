package analyzer

import "strings"

// keywordRule 关键词规则：任一关键词作为子串命中即返回 result
type keywordRule[T any] struct {
	keywords []string
	result   T
}

func (r keywordRule[T]) matches(text string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// firstMatch 按顺序评估规则，第一条命中的规则胜出
func firstMatch[T any](rules []keywordRule[T], text string) (T, bool) {
	for _, r := range rules {
		if r.matches(text) {
			return r.result, true
		}
	}
	var zero T
	return zero, false
}

func normalize(query string) string {
	return strings.ToLower(query)
}
