package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// StaticFS exposes the embedded assets for serving under /static/.
func StaticFS() http.FileSystem {
	return http.FS(staticFS)
}

// RenderIndex writes the full form page.
func RenderIndex(w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// RenderErrors writes the validation error fragment.
func RenderErrors(w io.Writer, errs []string) error {
	if err := templates.ExecuteTemplate(w, "errors.html", errs); err != nil {
		return fmt.Errorf("failed to render errors: %w", err)
	}
	return nil
}

// RenderResult writes the results fragment.
func RenderResult(w io.Writer, v ResultView) error {
	if err := templates.ExecuteTemplate(w, "result.html", v); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	return nil
}
