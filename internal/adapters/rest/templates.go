package rest

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

var (
	//go:embed templates/*.html
	templatesFS embed.FS
	templates   = template.Must(template.ParseFS(templatesFS, "templates/*.html"))
)

func (h *Handler) renderTemplate(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("serving html", zap.String("template", name), zap.Error(err))
	}
}
