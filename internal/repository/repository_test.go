package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"arcana/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database per test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Post{},
		&models.Comment{},
		&models.SavedReading{},
		&models.PromptConfig{},
	))
	return db
}

func makePost(t *testing.T, db *gorm.DB, author, category string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID:   author,
		AuthorName: "tester",
		Title:      "T",
		Content:    "C",
		Category:   category,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))
	return post
}
