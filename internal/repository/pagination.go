package repository

import (
	"context"
	"time"

	"arcana/internal/cache"
	"arcana/internal/models"

	"gorm.io/gorm"
)

// cursorRow is the minimal projection used as an opaque pagination cursor.
type cursorRow struct {
	CreatedAt time.Time
	ID        string
}

// defaultListPageSize is the page size the first-page cache is keyed for.
const defaultListPageSize = 10

// ListPage returns one window of posts plus the total page count, newest
// first. The first page at the default size is served cache-aside; post
// writes invalidate it, comment-count staleness is bounded by cache.ListTTL.
func (r *postRepository) ListPage(ctx context.Context, category string, page, pageSize int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultListPageSize
	}

	if page == 1 && pageSize == defaultListPageSize {
		var cached models.PostPage
		err := cache.Aside(ctx, cache.PostsListKey(category), &cached, cache.ListTTL, func() error {
			fresh, err := r.listPage(ctx, category, page, pageSize)
			if err != nil {
				return err
			}
			cached = *fresh
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}

	return r.listPage(ctx, category, page, pageSize)
}

// listPage computes one window directly from the store. Page 1 is a direct
// limited scan. For later pages the ordered prefix of (page-1)*pageSize rows
// is fetched first and its last row used as a strictly-after cursor for the
// window scan; this trades one extra bounded read for correct windows on
// stores without native offset support. The count and the window run as
// separate reads, so page boundaries are best-effort under concurrent writers.
func (r *postRepository) listPage(ctx context.Context, category string, page, pageSize int) (*models.PostPage, error) {
	var total int64
	if err := r.filtered(ctx, category).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	// Beyond the last page: empty window, correct page count, never an error.
	if page > totalPages || total == 0 {
		return &models.PostPage{Posts: []*models.Post{}, TotalPages: totalPages}, nil
	}

	q := r.filtered(ctx, category).Order("created_at DESC, id DESC").Limit(pageSize)

	if page > 1 {
		cur, ok, err := r.pageCursor(ctx, category, (page-1)*pageSize)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Prefix shrank under us (concurrent deletes); degrade to an empty window.
			return &models.PostPage{Posts: []*models.Post{}, TotalPages: totalPages}, nil
		}
		q = q.Where("created_at < ? OR (created_at = ? AND id < ?)", cur.CreatedAt, cur.CreatedAt, cur.ID)
	}

	var posts []*models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return &models.PostPage{Posts: posts, TotalPages: totalPages}, nil
}

// pageCursor fetches the ordered prefix of n rows and returns its last row.
func (r *postRepository) pageCursor(ctx context.Context, category string, n int) (cursorRow, bool, error) {
	var rows []cursorRow
	err := r.filtered(ctx, category).
		Model(&models.Post{}).
		Select("created_at", "id").
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return cursorRow{}, false, err
	}
	if len(rows) < n {
		return cursorRow{}, false, nil
	}
	return rows[len(rows)-1], true, nil
}

func (r *postRepository) filtered(ctx context.Context, category string) *gorm.DB {
	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}
