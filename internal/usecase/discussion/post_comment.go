package discussion

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/pkg/apperror"
)

type PostCommentInput struct {
	Requester entity.Requester
	Target    valueobject.ItemRef
	Text      string
	ParentID  *uuid.UUID
}

type PostCommentOutput struct {
	Comment       CommentView
	Notifications notify.Deliveries
}

type PostCommentUseCase struct {
	commentRepo repository.CommentRepository
	targets     *targetResolver
	userRepo    repository.UserRepository
	filter      *TextFilter
	sink        notify.Sink
}

func NewPostCommentUseCase(
	commentRepo repository.CommentRepository,
	lostRepo repository.LostReportRepository,
	foundRepo repository.FoundItemRepository,
	userRepo repository.UserRepository,
	filter *TextFilter,
	sink notify.Sink,
) *PostCommentUseCase {
	return &PostCommentUseCase{
		commentRepo: commentRepo,
		targets:     &targetResolver{lostRepo: lostRepo, foundRepo: foundRepo},
		userRepo:    userRepo,
		filter:      filter,
		sink:        sink,
	}
}

func (uc *PostCommentUseCase) Execute(ctx context.Context, input PostCommentInput) (*PostCommentOutput, error) {
	text := uc.filter.Clean(input.Text)
	if text == "" {
		return nil, apperror.Field("text", "текст комментария обязателен")
	}

	th, err := uc.targets.resolve(ctx, input.Requester, input.Target)
	if err != nil {
		return nil, err
	}
	if th.closed {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "обсуждение закрытой заявки недоступно")
	}

	var parent *entity.Comment
	if input.ParentID != nil {
		parent, err = uc.commentRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.Field("parent_id", "родительский комментарий не найден")
			}
			return nil, err
		}
		if parent.Target != input.Target {
			return nil, apperror.Field("parent_id", "родительский комментарий относится к другому объекту")
		}
	}

	comment, err := entity.NewComment(input.Target, input.Requester.UserID, text, input.ParentID)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить комментарий")
	}

	out := &PostCommentOutput{
		Comment:       CommentView{Comment: comment, Author: &AuthorInfo{ID: input.Requester.UserID, Role: input.Requester.Role}},
		Notifications: notify.Deliveries{},
	}

	author, err := uc.userRepo.FindByID(ctx, input.Requester.UserID)
	if err != nil {
		return out, nil
	}
	out.Comment.Author.Name = author.Name

	notified := map[uuid.UUID]bool{author.ID: true}
	if th.ownerID != nil && !notified[*th.ownerID] {
		notified[*th.ownerID] = true
		out.Notifications = append(out.Notifications, notify.ToUser(ctx, uc.sink, uc.userRepo, *th.ownerID,
			func(owner *entity.User) notify.Request {
				return notify.NewComment(owner, author, th.itemName, input.Target)
			}))
	}
	if parent != nil && parent.AuthorID != nil && !notified[*parent.AuthorID] {
		out.Notifications = append(out.Notifications, notify.ToUser(ctx, uc.sink, uc.userRepo, *parent.AuthorID,
			func(recipient *entity.User) notify.Request {
				return notify.CommentReply(recipient, author, th.itemName, input.Target)
			}))
	}

	return out, nil
}
