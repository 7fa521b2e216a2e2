package feed

import (
	"Wardrobe-Backend/internal/utils"
)

var (
	feedTextFields = []string{"category", "description", "image", "thumbnail", "instagramUrl", "title", "uploadDate", "id"}
	productFields  = []string{"brand", "name", "image", "link", "price"}
	statFields     = []string{"views", "saves", "shares"}
)

// SanitizeFeedItem converts an untyped request body into a storage-ready
// partial document. Only fields that coerce end up in the result, so a
// merge-write never clobbers stored values with defaults.
func SanitizeFeedItem(body map[string]any) map[string]any {
	out := map[string]any{}
	for _, k := range feedTextFields {
		if s, ok := utils.CoerceString(body[k]); ok {
			out[k] = s
		}
	}
	if b, ok := utils.CoerceBool(body["isSaved"]); ok {
		out["isSaved"] = b
	}
	if tags, ok := utils.CoerceTags(body["tags"]); ok {
		out["tags"] = tags
	}
	if iso := utils.ToISO(body["createdAt"]); iso != nil {
		out["createdAt"] = iso
	}
	if stats := sanitizeStats(body["stats"]); len(stats) > 0 {
		out["stats"] = stats
	}
	// content is written only when the body carries it (or the legacy
	// top-level products field), otherwise an update would wipe the
	// stored products list.
	if content, legacy := body["content"], body["products"]; content != nil || legacy != nil {
		out["content"] = NormalizeContent(content, legacy)
	}
	return out
}

// ShapeFeedItem produces the fully defaulted API object for a stored
// document. Every promised field is present; content.products is always a
// list even when the stored content is absent or malformed.
func ShapeFeedItem(docID string, data map[string]any) map[string]any {
	out := map[string]any{
		"docId":        docID,
		"id":           text(data["id"]),
		"category":     text(data["category"]),
		"description":  text(data["description"]),
		"image":        text(data["image"]),
		"thumbnail":    text(data["thumbnail"]),
		"instagramUrl": text(data["instagramUrl"]),
		"title":        text(data["title"]),
		"uploadDate":   text(data["uploadDate"]),
		"isSaved":      flag(data["isSaved"]),
		"tags":         tagList(data["tags"]),
		"createdAt":    utils.ToISO(data["createdAt"]),
		"content":      NormalizeContent(data["content"], nil),
	}
	if stats := sanitizeStats(data["stats"]); len(stats) > 0 {
		out["stats"] = stats
	}
	return out
}

// NormalizeContent shallow-copies the content map and re-normalizes its
// products list. legacy is the deprecated top-level products field, used
// only when content itself carries none.
func NormalizeContent(content any, legacy any) map[string]any {
	out := map[string]any{}
	if m, ok := content.(map[string]any); ok {
		for k, v := range m {
			out[k] = v
		}
	}
	src, ok := out["products"]
	if !ok {
		src = legacy
	}
	out["products"] = NormalizeProducts(src)
	return out
}

// NormalizeProducts coerces each product entry field-by-field, dropping
// entries where nothing coerced. The result is never nil.
func NormalizeProducts(v any) []map[string]any {
	entries := anySlice(v)
	products := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		p := map[string]any{}
		if id, ok := utils.CoerceInt(m["id"]); ok {
			p["id"] = id
		}
		for _, k := range productFields {
			if s, ok := utils.CoerceString(m[k]); ok {
				p[k] = s
			}
		}
		if len(p) > 0 {
			products = append(products, p)
		}
	}
	return products
}

func sanitizeStats(v any) map[string]int64 {
	var src map[string]any
	switch m := v.(type) {
	case map[string]any:
		src = m
	case map[string]int64:
		src = make(map[string]any, len(m))
		for k, n := range m {
			src[k] = n
		}
	default:
		return nil
	}
	stats := map[string]int64{}
	for _, k := range statFields {
		if n, ok := utils.CoerceCount(src[k]); ok {
			stats[k] = n
		}
	}
	return stats
}

func anySlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out
	default:
		return nil
	}
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
