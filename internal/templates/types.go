// Package templates renders user templates against a gitrev context and
// ships a small set of built-in starter templates.
package templates

// RenderOptions configures a Renderer.
type RenderOptions struct {
	// LogFormat backs the git_log_format helper.
	LogFormat LogFormatFunc

	// HelperPolicy controls helper query failures. Zero value is HelperFail.
	HelperPolicy HelperPolicy

	// Strict fails the render on references to missing keys instead of
	// printing "<no value>".
	Strict bool
}

// Template describes a built-in starter template.
type Template struct {
	// Name is the template identifier (version-go, build-info, ...).
	Name string

	// File is the file name inside the embedded filesystem.
	File string

	// Target is the suggested output file name.
	Target string

	// Description explains what the rendered file is for.
	Description string
}

// GenerateOptions configures writing a built-in template to disk.
type GenerateOptions struct {
	// TemplateName is the built-in template to write.
	TemplateName string

	// TargetPath is the destination file. Empty means the template's
	// default name with a .tmpl suffix in the current directory.
	TargetPath string

	// Force allows overwriting an existing file.
	Force bool
}

// GenerateResult contains the result of writing a template.
type GenerateResult struct {
	// Path is the file that was written.
	Path string

	// TemplateName is the template that was used.
	TemplateName string

	// RenderTarget is the suggested output path for rendering the template.
	RenderTarget string
}
