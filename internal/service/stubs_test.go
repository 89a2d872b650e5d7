package service

import (
	"context"
	"errors"
	"testing"

	"arcana/internal/models"

	"github.com/stretchr/testify/require"
)

// Function-field stubs keep each test focused on one behavior without a
// database.

type postRepoStub struct {
	createFn        func(ctx context.Context, post *models.Post) error
	getByIDFn       func(ctx context.Context, id string) (*models.Post, error)
	listPageFn      func(ctx context.Context, category string, page, pageSize int) (*models.PostPage, error)
	incrementViewFn func(ctx context.Context, id string) error
	deleteCascadeFn func(ctx context.Context, id string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *postRepoStub) ListPage(ctx context.Context, category string, page, pageSize int) (*models.PostPage, error) {
	return s.listPageFn(ctx, category, page, pageSize)
}

func (s *postRepoStub) IncrementViewCount(ctx context.Context, id string) error {
	return s.incrementViewFn(ctx, id)
}

func (s *postRepoStub) DeleteCascade(ctx context.Context, id string) error {
	return s.deleteCascadeFn(ctx, id)
}

type commentRepoStub struct {
	listByPostFn func(ctx context.Context, postID string) ([]*models.Comment, error)
	getByIDFn    func(ctx context.Context, postID, commentID string) (*models.Comment, error)
	createFn     func(ctx context.Context, comment *models.Comment) error
	updateFn     func(ctx context.Context, postID, commentID, content string) error
	deleteFn     func(ctx context.Context, postID, commentID string) error
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func (s *commentRepoStub) GetByID(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	return s.getByIDFn(ctx, postID, commentID)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *commentRepoStub) Update(ctx context.Context, postID, commentID, content string) error {
	return s.updateFn(ctx, postID, commentID, content)
}

func (s *commentRepoStub) Delete(ctx context.Context, postID, commentID string) error {
	return s.deleteFn(ctx, postID, commentID)
}

type readingRepoStub struct {
	createFn     func(ctx context.Context, reading *models.SavedReading) error
	getByIDFn    func(ctx context.Context, id string) (*models.SavedReading, error)
	listByUserFn func(ctx context.Context, userID string, limit int) ([]*models.SavedReading, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (s *readingRepoStub) Create(ctx context.Context, reading *models.SavedReading) error {
	return s.createFn(ctx, reading)
}

func (s *readingRepoStub) GetByID(ctx context.Context, id string) (*models.SavedReading, error) {
	return s.getByIDFn(ctx, id)
}

func (s *readingRepoStub) ListByUser(ctx context.Context, userID string, limit int) ([]*models.SavedReading, error) {
	return s.listByUserFn(ctx, userID, limit)
}

func (s *readingRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type promptConfigRepoStub struct {
	getByTaskFn func(ctx context.Context, taskName string) (*models.PromptConfig, error)
	upsertFn    func(ctx context.Context, config *models.PromptConfig) error
}

func (s *promptConfigRepoStub) GetByTask(ctx context.Context, taskName string) (*models.PromptConfig, error) {
	return s.getByTaskFn(ctx, taskName)
}

func (s *promptConfigRepoStub) Upsert(ctx context.Context, config *models.PromptConfig) error {
	return s.upsertFn(ctx, config)
}

func requireAppError(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func someCaller() models.Caller {
	return models.Caller{ID: "user-1", DisplayName: "점술가", PhotoURL: "https://example.com/p.png"}
}
