package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opmodel/gitrev/internal/output"
)

// Generator writes built-in templates to disk so they can be customized.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate writes the selected template's source to the target path.
func (g *Generator) Generate() (*GenerateResult, error) {
	name := g.opts.TemplateName
	if name == "" {
		name = DefaultTemplateName
	}

	tmpl, err := Get(name)
	if err != nil {
		return nil, err
	}

	content, err := Source(name)
	if err != nil {
		return nil, err
	}

	targetPath := g.opts.TargetPath
	if targetPath == "" {
		targetPath = tmpl.Target + ".tmpl"
	}

	if err := g.checkTarget(targetPath); err != nil {
		return nil, err
	}

	parentDir := filepath.Dir(targetPath)
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", parentDir, err)
	}

	if err := os.WriteFile(targetPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", targetPath, err)
	}

	output.Debug("created template", "template", tmpl.Name, "path", targetPath)

	return &GenerateResult{
		Path:         targetPath,
		TemplateName: tmpl.Name,
		RenderTarget: tmpl.Target,
	}, nil
}

// checkTarget refuses to replace an existing file unless Force is set.
func (g *Generator) checkTarget(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if !g.opts.Force {
		return fmt.Errorf("file %s already exists; use --force to overwrite", path)
	}
	return nil
}
