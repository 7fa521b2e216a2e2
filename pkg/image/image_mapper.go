package image

import (
	"Wardrobe-Backend/internal/utils"
)

var (
	imageTextFields    = []string{"category", "description", "title", "id", "imageUrl", "thumbnailUrl", "uploadDate", "uploadedBy"}
	imageCounterFields = []string{"likes", "saves", "shares", "views"}
	metadataNumFields  = []string{"size", "width", "height"}
)

// SanitizeImage converts an untyped request body into a storage-ready
// partial document; fields that fail coercion are omitted, never nulled.
// A missing thumbnail defaults to the image URL at sanitize time.
func SanitizeImage(body map[string]any) map[string]any {
	out := map[string]any{}
	for _, k := range imageTextFields {
		if s, ok := utils.CoerceString(body[k]); ok {
			out[k] = s
		}
	}
	if _, ok := out["thumbnailUrl"]; !ok {
		if u, ok := out["imageUrl"]; ok {
			out["thumbnailUrl"] = u
		}
	}
	if b, ok := utils.CoerceBool(body["isPublic"]); ok {
		out["isPublic"] = b
	}
	if tags, ok := utils.CoerceTags(body["tags"]); ok {
		out["tags"] = tags
	}
	// counters are stored only when numeric so an update can never
	// overwrite a stored count with zero
	for _, k := range imageCounterFields {
		if n, ok := utils.CoerceCount(body[k]); ok {
			out[k] = n
		}
	}
	if iso := utils.ToISO(body["createdAt"]); iso != nil {
		out["createdAt"] = iso
	}
	if meta := sanitizeMetadata(body["metadata"]); len(meta) > 0 {
		out["metadata"] = meta
	}
	return out
}

// ShapeImage produces the fully defaulted API object: text fields default to
// empty strings, counters to 0, tags to an empty list.
func ShapeImage(docID string, data map[string]any) map[string]any {
	out := map[string]any{
		"docId":        docID,
		"id":           text(data["id"]),
		"category":     text(data["category"]),
		"description":  text(data["description"]),
		"title":        text(data["title"]),
		"imageUrl":     text(data["imageUrl"]),
		"thumbnailUrl": text(data["thumbnailUrl"]),
		"uploadDate":   text(data["uploadDate"]),
		"uploadedBy":   text(data["uploadedBy"]),
		"isPublic":     flag(data["isPublic"]),
		"tags":         tagList(data["tags"]),
		"createdAt":    utils.ToISO(data["createdAt"]),
	}
	if out["thumbnailUrl"] == "" {
		out["thumbnailUrl"] = out["imageUrl"]
	}
	for _, k := range imageCounterFields {
		n, ok := utils.CoerceCount(data[k])
		if !ok {
			n = 0
		}
		out[k] = n
	}
	if meta := sanitizeMetadata(data["metadata"]); len(meta) > 0 {
		out["metadata"] = meta
	}
	return out
}

func sanitizeMetadata(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	meta := map[string]any{}
	if s, ok := utils.CoerceString(m["format"]); ok {
		meta["format"] = s
	}
	for _, k := range metadataNumFields {
		if n, ok := utils.CoerceInt(m[k]); ok {
			meta[k] = n
		}
	}
	return meta
}

func text(v any) string {
	s, ok := utils.CoerceString(v)
	if !ok {
		return ""
	}
	return s
}

func flag(v any) bool {
	b, _ := utils.CoerceBool(v)
	return b
}

func tagList(v any) []string {
	tags, ok := utils.CoerceTags(v)
	if !ok {
		return []string{}
	}
	return tags
}
