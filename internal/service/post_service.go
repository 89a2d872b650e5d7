// Package service implements the application's business operations on top of
// the repository layer. Expected failures are returned as *models.AppError
// values; read paths that hit infrastructure failures degrade to empty
// results instead of erroring.
package service

import (
	"context"
	"errors"
	"strings"

	"arcana/internal/models"
	"arcana/internal/observability"
	"arcana/internal/repository"
	"arcana/internal/tasks"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 200
	maxContentLen = 20000
)

// PostService owns post lifecycle operations.
type PostService struct {
	posts     repository.PostRepository
	scheduler *tasks.Scheduler
	logger    *observability.RepoLogger
}

// CreatePostInput carries a content-submission request.
type CreatePostInput struct {
	Caller          models.Caller
	Title           string
	Content         string
	Category        string
	ReadingQuestion string
	CardsInfo       string
	ImageURL        string
}

// NewPostService creates a PostService. scheduler may be nil, in which case
// view-count increments are skipped entirely.
func NewPostService(posts repository.PostRepository, scheduler *tasks.Scheduler) *PostService {
	return &PostService{
		posts:     posts,
		scheduler: scheduler,
		logger:    observability.NewRepoLogger("posts"),
	}
}

// CreatePost validates the input against the per-category schema and writes a
// new post with zeroed counters.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Caller.ID == "" {
		return nil, models.NewUnauthenticatedError("로그인이 필요합니다.")
	}

	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "제목을 입력해주세요."
	} else if len(in.Title) > maxTitleLen {
		fields["title"] = "제목이 너무 깁니다."
	}
	if strings.TrimSpace(in.Content) == "" {
		fields["content"] = "내용을 입력해주세요."
	} else if len(in.Content) > maxContentLen {
		fields["content"] = "내용이 너무 깁니다."
	}
	if !models.ValidCategory(in.Category) {
		fields["category"] = "알 수 없는 카테고리입니다."
	}
	if in.Category == models.CategoryReadingShare {
		if strings.TrimSpace(in.ReadingQuestion) == "" {
			fields["reading_question"] = "리딩 질문을 입력해주세요."
		}
		if strings.TrimSpace(in.CardsInfo) == "" {
			fields["cards_info"] = "카드 정보를 입력해주세요."
		}
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	post := &models.Post{
		AuthorID:        in.Caller.ID,
		AuthorName:      in.Caller.Name(),
		AuthorPhotoURL:  in.Caller.PhotoURL,
		Title:           in.Title,
		Content:         in.Content,
		Category:        in.Category,
		ReadingQuestion: in.ReadingQuestion,
		CardsInfo:       in.CardsInfo,
		ImageURL:        in.ImageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "create")
	return post, nil
}

// GetPost returns the post or NOT_FOUND. The view-count increment is
// dispatched best-effort after the read; it can never fail or block the read
// itself.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("게시물을 찾을 수 없습니다.")
		}
		return nil, models.NewStoreUnavailableError(err)
	}

	if s.scheduler != nil {
		postID := post.ID
		s.scheduler.Schedule("post_view_increment", func(taskCtx context.Context) error {
			return s.posts.IncrementViewCount(taskCtx, postID)
		})
	}
	return post, nil
}

// ListPosts returns one page of posts for a category. Infrastructure
// failures degrade to an empty single page rather than an error, so list
// views never crash on a flaky store.
func (s *PostService) ListPosts(ctx context.Context, category string, page, pageSize int) (*models.PostPage, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, models.NewValidationError("알 수 없는 카테고리입니다.")
	}

	result, err := s.posts.ListPage(ctx, category, page, pageSize)
	if err != nil {
		s.logger.Degraded(ctx, "list", err)
		return &models.PostPage{Posts: []*models.Post{}, TotalPages: 1}, nil
	}
	return result, nil
}

// DeletePost removes the post and all of its comments after an ownership
// check. Deletion is all-or-nothing.
func (s *PostService) DeletePost(ctx context.Context, postID string, callerID string) error {
	if callerID == "" {
		return models.NewUnauthenticatedError("로그인이 필요합니다.")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("게시물을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	if post.AuthorID != callerID {
		return models.NewPermissionDeniedError("게시물을 삭제할 권한이 없습니다.")
	}

	if err := s.posts.DeleteCascade(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost a race with another delete by the same owner.
			return models.NewNotFoundError("게시물을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "delete_cascade")
	return nil
}
