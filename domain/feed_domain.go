package domain

import "errors"

var (
	MessageFailedGetFeedItems   = "failed to retrieve feed items"
	MessageFailedCreateFeedItem = "failed to create feed item"
	MessageFailedUpdateFeedItem = "failed to update feed item"
	MessageFailedDeleteFeedItem = "failed to delete feed item"
	MessageFeedItemNotFound     = "feed item not found"

	ErrFeedItemNotFound = errors.New("feed item not found")
)

type FeedQuery struct {
	Limit    int
	Q        string
	Category string
	Saved    *bool
}
