// Package render executes the HTML page templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courtside/nba-stats/internal/failure"
)

// templatePattern selects the page files inside the template filesystem.
const templatePattern = "*.html"

// Renderer renders a named template with data.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// TemplateRenderer renders html/template files loaded once at startup.
type TemplateRenderer struct {
	tmpl *template.Template
}

// New parses every *.html file in fsys. Templates are addressed by file
// name without extension ("teams" for teams.html).
func New(fsys fs.FS) (*TemplateRenderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(fsys, templatePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// Render executes the named template into w.
func (r *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	t := r.tmpl.Lookup(fileName(name))
	if t == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return t.Execute(w, data)
}

// Has reports whether a template with the given name was loaded.
func (r *TemplateRenderer) Has(name string) bool {
	return r.tmpl.Lookup(fileName(name)) != nil
}

func fileName(name string) string {
	if path.Ext(name) == "" {
		return name + ".html"
	}
	return name
}

// HTML renders the template into a buffer and writes it with status 200.
// Nothing is written to the response when rendering fails.
func HTML(c *gin.Context, r Renderer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return failure.Rendering("render."+strings.TrimSuffix(name, ".html"), err)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	return nil
}

// Fail answers with the uniform failure message.
func Fail(c *gin.Context) {
	c.String(http.StatusInternalServerError, failure.Message)
}

// Abort logs a classified failure and answers with the uniform message.
func Abort(c *gin.Context, logger *zap.SugaredLogger, msg string, err error) {
	logger.Errorw(msg,
		"error", err,
		"kind", string(failure.KindOf(err)),
		"op", failure.OpOf(err),
		"path", c.Request.URL.Path,
	)
	_ = c.Error(err)
	Fail(c)
}
