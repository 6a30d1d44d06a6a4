// Package openapi serves Swagger UI for the OpenAPI document that huma
// generates from the registered operations.
package openapi

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SpecPath is where huma serves the generated OpenAPI 3.1 document.
const SpecPath = "/openapi.json"

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{.SpecURL}}",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// RegisterRoutes adds the Swagger UI page to e. The page loads the spec from
// SpecPath, so the huma API must be mounted on the same Echo instance.
func RegisterRoutes(e *echo.Echo, title string) {
	e.GET("/swagger/index.html", serveUI(title))
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveUI(title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)
		err := swaggerUI.Execute(c.Response(), struct {
			Title   string
			SpecURL string
		}{Title: title, SpecURL: SpecPath})
		if err != nil {
			return fmt.Errorf("rendering swagger ui: %w", err)
		}
		return nil
	}
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
