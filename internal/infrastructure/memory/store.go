// Package memory - хранилище в памяти процесса для локального запуска без PostgreSQL и для тестов.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
)

type Store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*entity.User
	lostReports   map[uuid.UUID]*entity.LostReport
	foundItems    map[uuid.UUID]*entity.FoundItem
	claims        map[uuid.UUID]*entity.Claim
	comments      map[uuid.UUID]*entity.Comment
	notifications map[uuid.UUID]*entity.Notification
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]*entity.User),
		lostReports:   make(map[uuid.UUID]*entity.LostReport),
		foundItems:    make(map[uuid.UUID]*entity.FoundItem),
		claims:        make(map[uuid.UUID]*entity.Claim),
		comments:      make(map[uuid.UUID]*entity.Comment),
		notifications: make(map[uuid.UUID]*entity.Notification),
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) LostReports() *LostReportRepository {
	return &LostReportRepository{s: s}
}

func (s *Store) FoundItems() *FoundItemRepository {
	return &FoundItemRepository{s: s}
}

func (s *Store) Claims() *ClaimRepository {
	return &ClaimRepository{s: s}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{s: s}
}

func (s *Store) Notifications() *NotificationRepository {
	return &NotificationRepository{s: s}
}

// page применяет limit/offset к уже отсортированному срезу.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
