package domain

import "errors"

var (
	MessageFailedGetImages    = "failed to retrieve images"
	MessageFailedCreateImage  = "failed to create image"
	MessageFailedUpdateImage  = "failed to update image"
	MessageFailedDeleteImage  = "failed to delete image"
	MessageFailedUploadImage  = "failed to upload image file"
	MessageImageNotFound      = "image not found"
	MessageImageTitleRequired = "title is required"

	ErrImageNotFound = errors.New("image not found")
)

type (
	ImageQuery struct {
		Limit    int
		Q        string
		Category string
		Public   *bool
	}

	CreateImageRequest struct {
		Title string `json:"title" validate:"required"`
	}
)
