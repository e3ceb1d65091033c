// Package pipeline wires the gitrev stages together: extra vars, git
// metadata, context assembly, rendering, and output.
package pipeline

import (
	"context"
	"os"

	"github.com/opmodel/gitrev/internal/config"
	"github.com/opmodel/gitrev/internal/gitinfo"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/templates"
	"github.com/opmodel/gitrev/internal/vars"
)

// Deps are the collaborators a run uses. Zero values select the production
// implementations.
type Deps struct {
	// Runner executes git. Nil runs the git binary in Options.RepoDir.
	Runner gitinfo.Runner

	// Sink receives the rendered text. Nil writes to the process stdout.
	Sink *output.Sink

	// Environ is the environment snapshot exposed under .env. Nil takes
	// os.Environ() once at the start of the run.
	Environ []string
}

// Result is the outcome of a successful run.
type Result struct {
	// Context is the data the template was rendered against.
	Context *vars.Context

	// Rendered is the fully materialized template output.
	Rendered string
}

// Run renders opts.TemplatePath and emits the result.
//
// Stages run in order and the first failure aborts the run:
//  1. VARS:    parse --vars and the vars file, before any git query
//  2. GIT:     collect revision, short revision, branch, and tags
//  3. CONTEXT: assemble the ordered context with the env snapshot
//  4. RENDER:  execute the template, git_log_format bound to the source
//  5. EMIT:    write to the output file or stdout
//
// Rendering completes in memory before anything is written, so a failed
// render leaves no partial output.
func Run(ctx context.Context, opts *config.Options, deps Deps) (*Result, error) {
	tctx, source, err := buildContext(ctx, opts, deps)
	if err != nil {
		return nil, err
	}

	renderer := templates.NewRenderer(templates.RenderOptions{
		LogFormat: func(format string) (string, error) {
			return source.LogFormat(ctx, format)
		},
		HelperPolicy: opts.HelperPolicy,
		Strict:       opts.Strict,
	})

	log := output.StageLogger("render")
	rendered, err := renderer.RenderFile(tctx, opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	log.Debug("template rendered", "path", opts.TemplatePath, "bytes", len(rendered))

	sink := deps.Sink
	if sink == nil {
		sink = output.NewSink()
	}
	if err := sink.Emit(rendered, output.EmitOptions{
		OutputPath: opts.OutputPath,
		Debug:      opts.Debug,
		Context:    tctx,
	}); err != nil {
		return nil, err
	}

	return &Result{Context: tctx, Rendered: rendered}, nil
}

// BuildContext runs the stages up to context assembly and returns the
// context a template would see.
func BuildContext(ctx context.Context, opts *config.Options, deps Deps) (*vars.Context, error) {
	tctx, _, err := buildContext(ctx, opts, deps)
	return tctx, err
}

func buildContext(ctx context.Context, opts *config.Options, deps Deps) (*vars.Context, *gitinfo.Source, error) {
	extra, err := loadExtraVars(opts)
	if err != nil {
		return nil, nil, err
	}

	runner := deps.Runner
	if runner == nil {
		runner = gitinfo.NewExecRunner(opts.RepoDir)
	}
	source := gitinfo.NewSource(runner)

	info, err := source.Collect(ctx, gitinfo.Options{
		TagPattern:  opts.TagPattern,
		ShortLength: opts.ShortLength,
	})
	if err != nil {
		return nil, nil, err
	}

	environ := deps.Environ
	if environ == nil {
		environ = os.Environ()
	}

	return vars.Build(info, extra, environ), source, nil
}
