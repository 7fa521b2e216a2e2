package domain

import "errors"

var (
	MessageFailedGetAiCards     = "failed to retrieve ai cards"
	MessageFailedCreateAiCard   = "failed to create ai card"
	MessageFailedUpdateAiCard   = "failed to update ai card"
	MessageFailedDeleteAiCard   = "failed to delete ai card"
	MessageAiCardNotFound       = "ai card not found"
	MessageAiCardFieldsRequired = "title and category are required"

	ErrAiCardNotFound = errors.New("ai card not found")
)

type CreateAiCardRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
}
