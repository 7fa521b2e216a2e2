package domain

var (
	MessageFailedWriteDocument  = "failed to write document"
	MessageIngestFieldsRequired = "collection and data are required"
)

// IngestRequest is the generic passthrough payload. The collection name is
// deliberately not validated against a whitelist; callers on this endpoint
// are trusted to write anywhere, including collections other endpoints own.
type IngestRequest struct {
	Collection string         `json:"collection" validate:"required"`
	DocID      string         `json:"docId"`
	Data       map[string]any `json:"data" validate:"required"`
}
