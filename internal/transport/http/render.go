package http

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

const layout = "layouts/main"

// NewViewEngine loads the storefront templates embedded in the binary
func NewViewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	if err := engine.Load(); err != nil {
		return nil, err
	}

	return engine, nil
}

// render executes tmpl inside the main layout. Output is buffered so a template
// error never leaves a half-written page behind.
func (h *ProductHandler) render(w http.ResponseWriter, status int, tmpl string, data map[string]any) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, tmpl, data, layout); err != nil {
		h.logger.Error("Unable to render template", "template", tmpl, "error", err)
		http.Error(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
