package service

import (
	"context"
	"errors"
	"strings"

	"arcana/internal/models"
	"arcana/internal/observability"
	"arcana/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 1000

// CommentService owns comment lifecycle operations under a parent post.
type CommentService struct {
	comments repository.CommentRepository
	logger   *observability.RepoLogger
}

// AddCommentInput carries a comment-submission request.
type AddCommentInput struct {
	Caller  models.Caller
	PostID  string
	Content string
}

func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{
		comments: comments,
		logger:   observability.NewRepoLogger("comments"),
	}
}

func validateCommentContent(content string) *models.AppError {
	if strings.TrimSpace(content) == "" {
		return models.NewFieldValidationError(map[string]string{
			"content": "댓글 내용을 입력해주세요.",
		})
	}
	if len([]rune(content)) > maxCommentLen {
		return models.NewFieldValidationError(map[string]string{
			"content": "댓글은 1000자 이내로 작성해주세요.",
		})
	}
	return nil
}

// ListComments returns the post's comments oldest-first. Infrastructure
// failures degrade to an empty list.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		s.logger.Degraded(ctx, "list", err)
		return []*models.Comment{}, nil
	}
	return comments, nil
}

// AddComment validates and writes a comment. The parent post's comment count
// is updated in the same transaction as the insert, so the two can never
// drift apart.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if in.Caller.ID == "" {
		return nil, models.NewUnauthenticatedError("로그인이 필요합니다.")
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:         in.PostID,
		AuthorID:       in.Caller.ID,
		AuthorName:     in.Caller.Name(),
		AuthorPhotoURL: in.Caller.PhotoURL,
		Content:        in.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("게시물을 찾을 수 없습니다.")
		}
		return nil, models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "create")
	return comment, nil
}

// UpdateComment replaces the comment body after an ownership check. Author
// fields and the parent's counters are left untouched.
func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID, content, callerID string) error {
	if callerID == "" {
		return models.NewUnauthenticatedError("로그인이 필요합니다.")
	}
	if err := validateCommentContent(content); err != nil {
		return err
	}

	comment, err := s.comments.GetByID(ctx, postID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("댓글을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	if comment.AuthorID != callerID {
		return models.NewPermissionDeniedError("댓글을 수정할 권한이 없습니다.")
	}

	if err := s.comments.Update(ctx, postID, commentID, content); err != nil {
		return models.NewStoreUnavailableError(err)
	}
	return nil
}

// DeleteComment removes the comment and decrements the parent's comment
// count in the same transaction.
func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID, callerID string) error {
	if callerID == "" {
		return models.NewUnauthenticatedError("로그인이 필요합니다.")
	}

	comment, err := s.comments.GetByID(ctx, postID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("댓글을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	if comment.AuthorID != callerID {
		return models.NewPermissionDeniedError("댓글을 삭제할 권한이 없습니다.")
	}

	if err := s.comments.Delete(ctx, postID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("댓글을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "delete")
	return nil
}
