package handler

import (
	"github.com/gofiber/fiber/v2"

	"capstonehub/internal/catalog"
)

// ListAssignments returns the compiled-in capstone catalog.
func ListAssignments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.List())
	}
}

// GetAssignment returns one assignment's detail. Unknown ids and
// incomplete assignments both answer 404: an unfinished assignment has no
// reachable detail view.
func GetAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		a := catalog.Get(c.Params("id"))
		if a == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "assignment not found")
		}
		return c.JSON(a)
	}
}
