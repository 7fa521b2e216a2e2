package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes the shared {ok:true,...} envelope.
func SuccessResponse(c *fiber.Ctx, data fiber.Map, status int) error {
	body := fiber.Map{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// ErrorResponse logs the failure in full server-side and reports only a
// short message to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(fiber.Map{"ok": false, "error": message})
}
