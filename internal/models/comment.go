package models

import (
	"time"
)

// Comment is a child document of a Post. A comment never outlives its post:
// deleting the post removes its comments in the same transaction, and every
// comment create/delete adjusts the parent's CommentCount by exactly one in
// the same transaction.
type Comment struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PostID         string    `gorm:"not null;index;type:varchar(36)" json:"post_id"`
	AuthorID       string    `gorm:"not null;index;type:varchar(64)" json:"author_id"`
	AuthorName     string    `gorm:"not null" json:"author_name"`
	AuthorPhotoURL string    `json:"author_photo_url"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
