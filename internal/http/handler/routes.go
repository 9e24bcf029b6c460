package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"capstonehub/internal/drive"
	"capstonehub/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay free of business logic; everything real lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, driveSvc drive.Service, driveFolderID string) {
	// Serve OpenAPI spec and a Swagger UI page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Document registry
	app.Get("/documents", ListDocuments(docSvc))
	app.Post("/documents", UploadDocument(docSvc))
	app.Get("/documents/categories", DocumentCategories())
	app.Patch("/documents/:id", UpdateDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))
	app.Get("/documents/:id/download", DownloadDocument(docSvc))

	// Drive folder browser (read-only)
	app.Get("/drive/files", ListDriveFiles(driveSvc, driveFolderID))
	app.Get("/drive/files/:fileId", GetDriveFile(driveSvc))

	// Static assignment catalog
	app.Get("/assignments", ListAssignments())
	app.Get("/assignments/:id", GetAssignment())

	// Contact form sink
	app.Post("/contact", SubmitContact())
}
