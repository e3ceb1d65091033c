package pipeline

import (
	"github.com/opmodel/gitrev/internal/config"
	"github.com/opmodel/gitrev/internal/output"
	"github.com/opmodel/gitrev/internal/vars"
)

// loadExtraVars reads the vars file, then overlays the inline --vars
// object. Either source may be absent.
func loadExtraVars(opts *config.Options) (map[string]any, error) {
	var fromFile map[string]any
	if opts.VarsFile != "" {
		loaded, err := vars.LoadExtraVarsFile(opts.VarsFile)
		if err != nil {
			return nil, err
		}
		output.Debug("loaded vars file", "path", opts.VarsFile, "keys", len(loaded))
		fromFile = loaded
	}

	var inline map[string]any
	if opts.ExtraVars != "" {
		parsed, err := vars.ParseExtraVars(opts.ExtraVars)
		if err != nil {
			return nil, err
		}
		inline = parsed
	}

	return vars.MergeExtraVars(fromFile, inline), nil
}
