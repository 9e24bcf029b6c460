package handler

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact accepts an arbitrary JSON body, logs it, and discards it.
// Nothing is persisted; the endpoint exists so the site's contact form
// has somewhere to post.
func SubmitContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			log.Printf("contact form: bad payload: %v", err)
			return writeError(c, fiber.StatusInternalServerError, "INVALID_BODY", "error processing request")
		}
		log.Printf("contact form submission: %v", body)
		return c.JSON(fiber.Map{"message": "Form submitted successfully"})
	}
}
