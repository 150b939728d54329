package discussion

import (
	"html"
	"strings"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
)

// TextFilter вычищает разметку из комментариев и маскирует запрещённые слова.
type TextFilter struct {
	policy    *bluemonday.Policy
	sensitive *sensitive.Filter
}

func NewTextFilter(words []string) *TextFilter {
	filter := sensitive.New()
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			filter.AddWord(w)
		}
	}
	return &TextFilter{
		policy:    bluemonday.StrictPolicy(),
		sensitive: filter,
	}
}

// maxUnescapePasses ограничивает число слоёв экранирования, которые снимает Clean.
const maxUnescapePasses = 4

// Clean возвращает обычный текст без тегов. Пустой результат означает, что текста нет.
func (f *TextFilter) Clean(text string) string {
	text = strings.TrimSpace(f.plain(text))
	if text == "" {
		return ""
	}
	return f.sensitive.Replace(text, '*')
}

// plain чистит и раскодирует текст, пока результат не перестанет меняться:
// раскодированные сущности могут снова оказаться разметкой.
func (f *TextFilter) plain(text string) string {
	for i := 0; i < maxUnescapePasses; i++ {
		next := html.UnescapeString(f.policy.Sanitize(text))
		if next == text {
			return next
		}
		text = next
	}
	// Слишком глубокое экранирование оставляем закодированным.
	return f.policy.Sanitize(text)
}
