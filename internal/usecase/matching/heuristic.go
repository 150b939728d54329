package matching

import (
	"sort"
	"strings"
	"time"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
)

const (
	// Window - найденные вещи старше этого срока не предлагаются.
	Window     = 30 * 24 * time.Hour
	MaxResults = 5

	descriptionPrefixRunes = 100
)

// Match отбирает кандидатов для заявки: та же категория, найдено не раньше Window назад,
// совпадение по названию или по началу описания. Самые свежие первыми, не больше MaxResults.
// Функция ничего не изменяет.
func Match(report *entity.LostReport, candidates []*entity.FoundItem, now time.Time) []*entity.FoundItem {
	since := now.Add(-Window)

	nameNeedle := normalize(report.ItemName)
	nameTokens := strings.Fields(nameNeedle)
	descNeedle := normalize(prefix(report.Description, descriptionPrefixRunes))

	matches := make([]*entity.FoundItem, 0, MaxResults)
	for _, item := range candidates {
		if item == nil || item.Category != report.Category {
			continue
		}
		if item.DateFound.Before(since) {
			continue
		}
		if !nameMatches(normalize(item.ItemName), nameNeedle, nameTokens) &&
			!containsNonEmpty(normalize(item.Description), descNeedle) {
			continue
		}
		matches = append(matches, item)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DateFound.After(matches[j].DateFound)
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

// nameMatches: целиком подстрока или каждое слово названия встречается в найденном.
func nameMatches(haystack, needle string, tokens []string) bool {
	if containsNonEmpty(haystack, needle) {
		return true
	}
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

func containsNonEmpty(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
