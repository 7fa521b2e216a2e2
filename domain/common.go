package domain

var (
	MessageFailedBodyRequest = "failed to process request body"
)
