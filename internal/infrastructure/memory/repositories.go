package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperror.New(apperror.ErrCodeConflict, "пользователь с таким email уже существует")
		}
	}
	c := *user
	r.s.users[user.ID] = &c
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperror.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *UserRepository) FindByBlock(ctx context.Context, block string) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []*entity.User
	for _, u := range r.s.users {
		if u.Block == block {
			c := *u
			result = append(result, &c)
		}
	}
	return result, nil
}

func (r *UserRepository) FindByRoles(ctx context.Context, roles ...valueobject.Role) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []*entity.User
	for _, u := range r.s.users {
		for _, role := range roles {
			if u.Role == role {
				c := *u
				result = append(result, &c)
				break
			}
		}
	}
	return result, nil
}

type LostReportRepository struct{ s *Store }

func (r *LostReportRepository) Create(ctx context.Context, report *entity.LostReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *report
	r.s.lostReports[report.ID] = &c
	return nil
}

func (r *LostReportRepository) Update(ctx context.Context, report *entity.LostReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lostReports[report.ID]; !ok {
		return apperror.ErrLostReportNotFound
	}
	c := *report
	r.s.lostReports[report.ID] = &c
	return nil
}

func (r *LostReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LostReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	report, ok := r.s.lostReports[id]
	if !ok {
		return nil, apperror.ErrLostReportNotFound
	}
	c := *report
	return &c, nil
}

func (r *LostReportRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.LostReport, int, error) {
	reports := r.collect(func(lr *entity.LostReport) bool { return lr.OwnerID == ownerID })
	return page(reports, limit, offset), len(reports), nil
}

func (r *LostReportRepository) ListFeed(ctx context.Context, filter repository.FeedFilter) ([]*entity.LostReport, int, error) {
	var owners map[uuid.UUID]struct{}
	if filter.OwnerIDs != nil {
		owners = make(map[uuid.UUID]struct{}, len(filter.OwnerIDs))
		for _, id := range filter.OwnerIDs {
			owners[id] = struct{}{}
		}
	}

	reports := r.collect(func(lr *entity.LostReport) bool {
		if lr.PublishStatus != valueobject.PublishStatusPublished ||
			lr.Visibility != valueobject.VisibilityCampus ||
			lr.ReviewStatus != valueobject.ReviewStatusApproved {
			return false
		}
		if lr.Status == valueobject.ReportStatusClosed &&
			(lr.ClosedAt == nil || lr.ClosedAt.Before(filter.ClosedSince)) {
			return false
		}
		if filter.Category != nil && lr.Category != *filter.Category {
			return false
		}
		if owners != nil {
			if _, ok := owners[lr.OwnerID]; !ok {
				return false
			}
		}
		return true
	})
	return page(reports, filter.Limit, filter.Offset), len(reports), nil
}

func (r *LostReportRepository) List(ctx context.Context, filter repository.LostReportFilter) ([]*entity.LostReport, int, error) {
	reports := r.collect(func(lr *entity.LostReport) bool { return matchesLostFilter(lr, filter) })
	return page(reports, filter.Limit, filter.Offset), len(reports), nil
}

func (r *LostReportRepository) Count(ctx context.Context, filter repository.LostReportFilter) (int, error) {
	return len(r.collect(func(lr *entity.LostReport) bool { return matchesLostFilter(lr, filter) })), nil
}

// collect возвращает копии, отсортированные от новых к старым.
func (r *LostReportRepository) collect(keep func(*entity.LostReport) bool) []*entity.LostReport {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []*entity.LostReport
	for _, lr := range r.s.lostReports {
		if keep(lr) {
			c := *lr
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func matchesLostFilter(lr *entity.LostReport, filter repository.LostReportFilter) bool {
	if filter.Status != nil && lr.Status != *filter.Status {
		return false
	}
	if filter.Visibility != nil && lr.Visibility != *filter.Visibility {
		return false
	}
	if filter.ReviewStatus != nil && lr.ReviewStatus != *filter.ReviewStatus {
		return false
	}
	return true
}

type FoundItemRepository struct{ s *Store }

func (r *FoundItemRepository) Create(ctx context.Context, item *entity.FoundItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *item
	r.s.foundItems[item.ID] = &c
	return nil
}

func (r *FoundItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoundItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.foundItems[id]
	if !ok {
		return nil, apperror.ErrFoundItemNotFound
	}
	c := *item
	return &c, nil
}

func (r *FoundItemRepository) List(ctx context.Context, filter repository.FoundItemFilter) ([]*entity.FoundItem, int, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	location := strings.ToLower(strings.TrimSpace(filter.Location))

	items := r.collect(func(item *entity.FoundItem) bool {
		if filter.Category != nil && item.Category != *filter.Category {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.ItemName), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(item.LocationFound), location) {
			return false
		}
		return true
	})
	return page(items, filter.Limit, filter.Offset), len(items), nil
}

func (r *FoundItemRepository) FindCandidates(ctx context.Context, category valueobject.Category, since time.Time) ([]*entity.FoundItem, error) {
	return r.collect(func(item *entity.FoundItem) bool {
		return item.Category == category && !item.DateFound.Before(since)
	}), nil
}

func (r *FoundItemRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.foundItems), nil
}

// collect сортирует по дате находки, свежие первыми.
func (r *FoundItemRepository) collect(keep func(*entity.FoundItem) bool) []*entity.FoundItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []*entity.FoundItem
	for _, item := range r.s.foundItems {
		if keep(item) {
			c := *item
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateFound.After(result[j].DateFound)
	})
	return result
}

type ClaimRepository struct{ s *Store }

func (r *ClaimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.claims {
		if existing.ClaimantID == claim.ClaimantID && existing.FoundItemID == claim.FoundItemID {
			return apperror.ErrDuplicateClaim
		}
	}
	c := *claim
	r.s.claims[claim.ID] = &c
	return nil
}

func (r *ClaimRepository) Update(ctx context.Context, claim *entity.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.claims[claim.ID]; !ok {
		return apperror.ErrClaimNotFound
	}
	c := *claim
	r.s.claims[claim.ID] = &c
	return nil
}

func (r *ClaimRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	claim, ok := r.s.claims[id]
	if !ok {
		return nil, apperror.ErrClaimNotFound
	}
	c := *claim
	return &c, nil
}

func (r *ClaimRepository) FindByClaimantAndFoundItem(ctx context.Context, claimantID, foundItemID uuid.UUID) (*entity.Claim, error) {
	claims := r.collect(func(c *entity.Claim) bool {
		return c.ClaimantID == claimantID && c.FoundItemID == foundItemID
	})
	if len(claims) == 0 {
		return nil, nil
	}
	return claims[0], nil
}

func (r *ClaimRepository) FindByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*entity.Claim, error) {
	return r.collect(func(c *entity.Claim) bool { return c.ClaimantID == claimantID }), nil
}

func (r *ClaimRepository) FindByFoundItem(ctx context.Context, foundItemID uuid.UUID) ([]*entity.Claim, error) {
	return r.collect(func(c *entity.Claim) bool { return c.FoundItemID == foundItemID }), nil
}

func (r *ClaimRepository) List(ctx context.Context, filter repository.ClaimFilter) ([]*entity.Claim, int, error) {
	claims := r.collect(func(c *entity.Claim) bool {
		return filter.Status == nil || c.Status == *filter.Status
	})
	return page(claims, filter.Limit, filter.Offset), len(claims), nil
}

func (r *ClaimRepository) Count(ctx context.Context, filter repository.ClaimFilter) (int, error) {
	_, total, err := r.List(ctx, repository.ClaimFilter{Status: filter.Status})
	return total, err
}

func (r *ClaimRepository) collect(keep func(*entity.Claim) bool) []*entity.Claim {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var result []*entity.Claim
	for _, claim := range r.s.claims {
		if keep(claim) {
			c := *claim
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

type CommentRepository struct{ s *Store }

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *comment
	r.s.comments[comment.ID] = &c
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	comment, ok := r.s.comments[id]
	if !ok {
		return nil, apperror.ErrCommentNotFound
	}
	c := *comment
	return &c, nil
}

func (r *CommentRepository) FindByTarget(ctx context.Context, target valueobject.ItemRef) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := []*entity.Comment{}
	for _, comment := range r.s.comments {
		if comment.Target == target {
			c := *comment
			result = append(result, &c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *CommentRepository) DeleteByTarget(ctx context.Context, target valueobject.ItemRef) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var deleted int64
	for id, comment := range r.s.comments {
		if comment.Target == target {
			delete(r.s.comments, id)
			deleted++
		}
	}
	return deleted, nil
}

type NotificationRepository struct{ s *Store }

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *n
	r.s.notifications[n.ID] = &c
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, apperror.ErrNotificationNotFound
	}
	c := *n
	return &c, nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	r.s.mu.RLock()
	var result []*entity.Notification
	for _, n := range r.s.notifications {
		if n.RecipientID != recipientID || (unreadOnly && n.Read) {
			continue
		}
		c := *n
		result = append(result, &c)
	}
	r.s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return page(result, limit, offset), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return apperror.ErrNotificationNotFound
	}
	n.MarkRead()
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			n.MarkRead()
		}
	}
	return nil
}
