package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	oerrors "github.com/opmodel/gitrev/internal/errors"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/vars"
)

// Renderer handles template rendering with the sprig function library and
// the git_log_format helper.
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a new renderer with the given options.
func NewRenderer(opts RenderOptions) *Renderer {
	if opts.HelperPolicy == "" {
		opts.HelperPolicy = HelperFail
	}
	return &Renderer{opts: opts}
}

// RenderFile reads the template at path and renders it against ctx.
func (r *Renderer) RenderFile(ctx *vars.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &oerrors.TemplateError{Stage: oerrors.StageIO, Path: path, Err: err}
	}
	output.Debug("template loaded", "path", path, "bytes", len(content))

	return r.render(filepath.Base(path), path, string(content), ctx)
}

// RenderString renders template source held in memory. name identifies the
// template in error messages.
func (r *Renderer) RenderString(name, content string, ctx *vars.Context) (string, error) {
	return r.render(name, name, content, ctx)
}

func (r *Renderer) render(name, path, content string, ctx *vars.Context) (string, error) {
	// Functions must be registered before Parse, which resolves every
	// function name it sees.
	tmpl := template.New(name).Funcs(r.funcMap())
	if r.opts.Strict {
		tmpl = tmpl.Option("missingkey=error")
	}

	tmpl, err := tmpl.Parse(content)
	if err != nil {
		return "", &oerrors.TemplateError{Stage: oerrors.StageCompile, Path: path, Err: err}
	}

	var data map[string]any
	if ctx != nil {
		data = ctx.Map()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &oerrors.TemplateError{Stage: oerrors.StageRender, Path: path, Err: err}
	}

	return buf.String(), nil
}

// funcMap returns sprig's text functions plus the helper. sprig's env and
// expandenv are dropped so templates only see the environment snapshot
// under .env.
func (r *Renderer) funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	delete(funcs, "env")
	delete(funcs, "expandenv")
	funcs[HelperName] = logFormatHelper(r.opts.LogFormat, r.opts.HelperPolicy)
	return funcs
}
