// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post categories form a fixed, closed set. Category-specific optional fields
// (ReadingQuestion, CardsInfo) are only meaningful for CategoryReadingShare.
const (
	CategoryFreeDiscussion = "free-discussion"
	CategoryReadingShare   = "reading-share"
	CategoryQAndA          = "q-and-a"
	CategoryDeckReview     = "deck-review"
	CategoryStudyGroup     = "study-group"
)

// ValidCategory reports whether c is one of the known post categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryFreeDiscussion, CategoryReadingShare, CategoryQAndA, CategoryDeckReview, CategoryStudyGroup:
		return true
	}
	return false
}

// Post represents a community post.
//
// CommentCount is persisted and is mutated only inside the same transaction as
// a comment create or delete, never by a post edit. ViewCount is best-effort
// and may lag behind reality (see tasks.Scheduler).
type Post struct {
	ID             string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AuthorID       string `gorm:"not null;index;type:varchar(64)" json:"author_id"`
	AuthorName     string `gorm:"not null" json:"author_name"`
	AuthorPhotoURL string `json:"author_photo_url"`
	Title          string `gorm:"not null" json:"title"`
	Content        string `gorm:"type:text;not null" json:"content"`
	Category       string `gorm:"not null;index" json:"category"`

	// Category-specific fields.
	ReadingQuestion string `gorm:"type:text" json:"reading_question,omitempty"`
	CardsInfo       string `gorm:"type:text" json:"cards_info,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`

	ViewCount    int `gorm:"not null;default:0" json:"view_count"`
	CommentCount int `gorm:"not null;default:0" json:"comment_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostPage is one window of a paginated post listing.
type PostPage struct {
	Posts      []*Post `json:"posts"`
	TotalPages int     `json:"total_pages"`
}
