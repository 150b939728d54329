package discussion

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

type AuthorInfo struct {
	ID   uuid.UUID
	Name string
	Role valueobject.Role
}

// CommentView - комментарий с автором. У служебных сообщений Author == nil.
type CommentView struct {
	Comment *entity.Comment
	Author  *AuthorInfo
}

type ListCommentsUseCase struct {
	commentRepo repository.CommentRepository
	targets     *targetResolver
	userRepo    repository.UserRepository
}

func NewListCommentsUseCase(
	commentRepo repository.CommentRepository,
	lostRepo repository.LostReportRepository,
	foundRepo repository.FoundItemRepository,
	userRepo repository.UserRepository,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		targets:     &targetResolver{lostRepo: lostRepo, foundRepo: foundRepo},
		userRepo:    userRepo,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, requester entity.Requester, target valueobject.ItemRef) ([]CommentView, error) {
	if _, err := uc.targets.resolve(ctx, requester, target); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.FindByTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	authors := make(map[uuid.UUID]*AuthorInfo)
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		view := CommentView{Comment: c}
		if c.AuthorID != nil {
			view.Author = uc.author(ctx, *c.AuthorID, authors)
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *ListCommentsUseCase) author(ctx context.Context, id uuid.UUID, cache map[uuid.UUID]*AuthorInfo) *AuthorInfo {
	if info, ok := cache[id]; ok {
		return info
	}
	info := &AuthorInfo{ID: id}
	if u, err := uc.userRepo.FindByID(ctx, id); err == nil {
		info.Name = u.Name
		info.Role = u.Role
	}
	cache[id] = info
	return info
}
