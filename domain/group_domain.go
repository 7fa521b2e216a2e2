package domain

import "errors"

var (
	MessageFailedGetGroups       = "failed to retrieve groups"
	MessageFailedAppendGroupItem = "failed to append item"
	MessageFailedUpdateGroupItem = "failed to update item"
	MessageFailedDeleteGroupItem = "failed to delete item"
	MessageGroupNotFound         = "group not found"
	MessageGroupItemNotFound     = "item not found"

	ErrGroupNotFound     = errors.New("group not found")
	ErrGroupItemNotFound = errors.New("group item not found")
)
