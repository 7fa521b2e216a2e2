package aicard

import (
	"Wardrobe-Backend/internal/utils"
)

var aiCardTextFields = []string{"title", "image", "prompt", "link", "gender", "category"}

// SanitizeAiCard coerces the card fields the client may set. createdAt is
// never accepted from the client; it is stamped by the store on create and
// preserved on update.
func SanitizeAiCard(body map[string]any) map[string]any {
	out := map[string]any{}
	for _, k := range aiCardTextFields {
		if s, ok := utils.CoerceString(body[k]); ok {
			out[k] = s
		}
	}
	return out
}

// ShapeAiCard produces the API-facing card. Gender defaults to "Unisex" and
// the category falls back to the document's own identifier.
func ShapeAiCard(docID string, data map[string]any) map[string]any {
	gender, ok := utils.CoerceString(data["gender"])
	if !ok || gender == "" {
		gender = "Unisex"
	}
	category, ok := utils.CoerceString(data["category"])
	if !ok || category == "" {
		category = docID
	}

	return map[string]any{
		"id":        docID,
		"title":     text(data["title"]),
		"image":     text(data["image"]),
		"prompt":    text(data["prompt"]),
		"link":      text(data["link"]),
		"gender":    gender,
		"category":  category,
		"createdAt": utils.ToISO(data["createdAt"]),
	}
}

func text(v any) string {
	s, ok := utils.CoerceString(v)
	if !ok {
		return ""
	}
	return s
}
