package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/valyala/bytebufferpool"

	"github.com/clubstats/statsboard/internal/platform/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = map[string]*template.Template{
	"matches":    parsePage("matches.html"),
	"tournament": parsePage("tournament.html"),
	"teams":      parsePage("teams.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// renderPage executes the page template into a pooled buffer first so a
// template failure yields a clean 500 instead of a half-written body.
func renderPage(ctx context.Context, w http.ResponseWriter, logger *logging.Logger, page string, data any) {
	tmpl, found := pageTemplates[page]
	if !found {
		logger.ErrorContext(ctx, "unknown page template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		logger.ErrorContext(ctx, "render page failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
