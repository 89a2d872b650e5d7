package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	postKeyPrefix     = "post:%s"
	postListKeyPrefix = "posts:%s:p1"
)

const (
	// PostTTL is short because comment counts are embedded in the cached post.
	PostTTL = 2 * time.Minute
	// ListTTL bounds staleness of the embedded comment counts, which comment
	// writes do not invalidate at the list level.
	ListTTL = 1 * time.Minute
)

// PostKey is the cache key for a single post.
func PostKey(postID string) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// PostsListKey is the cache key for the first page of a category listing.
func PostsListKey(category string) string {
	return fmt.Sprintf(postListKeyPrefix, category)
}

// Invalidate removes a single key.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePostLists removes the cached first pages a post appears on: its
// category listing and the all-categories listing.
func InvalidatePostLists(ctx context.Context, category string) {
	Invalidate(ctx, PostsListKey(category))
	Invalidate(ctx, PostsListKey(""))
}

// InvalidatePost removes a post's cache entry and the listings it appears on.
func InvalidatePost(ctx context.Context, postID, category string) {
	Invalidate(ctx, PostKey(postID))
	InvalidatePostLists(ctx, category)
}
