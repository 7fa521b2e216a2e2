package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func parseLimit(raw string, fallback int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}

func parseBoolFlag(raw string) *bool {
	switch raw {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}

// parseBody decodes a JSON body into an open map; an empty body is an empty
// map, not an error, so bodyless mutations stay no-ops.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	body := map[string]any{}
	if len(c.Body()) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return nil, err
	}
	return body, nil
}
