package vars

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/gitrev/internal/errors"
)

// InlineSource names extra vars supplied on the command line.
const InlineSource = "--vars"

// ParseExtraVars parses the inline JSON text given with --vars. The text
// must hold exactly one JSON object.
func ParseExtraVars(text string) (map[string]any, error) {
	return parseObject([]byte(text), InlineSource)
}

// LoadExtraVarsFile reads extra vars from a JSON or YAML file. The document
// must be an object.
func LoadExtraVarsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oerrors.ExtraVarsError{Source: path, Reason: "cannot read file", Err: err}
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &oerrors.ExtraVarsError{Source: path, Reason: "malformed document", Err: err}
	}

	return parseObject(jsonData, path)
}

// MergeExtraVars returns base with the top-level keys of overlay applied on
// top. Neither input is modified.
func MergeExtraVars(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

func parseObject(data []byte, source string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oerrors.ExtraVarsError{Source: source, Reason: "empty input, expected a JSON object"}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, &oerrors.ExtraVarsError{Source: source, Reason: "malformed JSON", Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &oerrors.ExtraVarsError{Source: source, Reason: "unexpected data after the JSON object"}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &oerrors.ExtraVarsError{
			Source: source,
			Reason: "expected a JSON object, got " + jsonKind(value),
		}
	}
	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "value"
	}
}
