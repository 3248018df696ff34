package chat

import (
	"sort"

	"backoffice/internal/entities"
)

// Merge объединяет уже накопленный буфер с новой страницей истории:
// дубликаты по id отбрасываются, результат отсортирован по времени отправки
// по возрастанию. Сообщения с одинаковым sent_at упорядочиваются по id.
func Merge(existing, fetched []entities.Message) []entities.Message {
	seen := make(map[int64]struct{}, len(existing)+len(fetched))
	merged := make([]entities.Message, 0, len(existing)+len(fetched))

	for _, m := range existing {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	for _, m := range fetched {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].SentAt.Equal(merged[j].SentAt) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].SentAt.Before(merged[j].SentAt)
	})

	return merged
}
