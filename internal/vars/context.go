// Package vars assembles the data a template is rendered against.
package vars

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/opmodel/gitrev/internal/gitinfo"
)

// Top-level context keys.
const (
	KeyRevision = "revision"
	KeyRevShort = "rev_short"
	KeyBranch   = "branch"
	KeyTags     = "tags"
	KeyEnv      = "env"
	KeyExtra    = "extra"
)

// Context is a string-keyed mapping that remembers insertion order.
type Context struct {
	keys   []string
	values map[string]any
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set stores value under key. Replacing an existing key keeps its position.
func (c *Context) Set(key string, value any) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c *Context) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of keys.
func (c *Context) Len() int {
	return len(c.keys)
}

// Map returns a shallow copy of the context as a plain map, the form
// text/template indexes with {{ .key }}.
func (c *Context) Map() map[string]any {
	m := make(map[string]any, len(c.values))
	for k, v := range c.values {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the context as a JSON object with keys in insertion
// order. Nested maps are encoded by encoding/json and therefore sorted.
func (c *Context) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Build merges repository metadata, an environment snapshot, and user
// variables into a Context. Repository fields come first; environ entries
// ("NAME=value") land under "env" and extra under "extra", so neither can
// shadow a repository key. A nil extra becomes an empty object.
func Build(info gitinfo.RepositoryInfo, extra map[string]any, environ []string) *Context {
	tags := info.Tags
	if tags == nil {
		tags = []string{}
	}
	if extra == nil {
		extra = map[string]any{}
	}

	ctx := NewContext()
	ctx.Set(KeyRevision, info.Revision)
	ctx.Set(KeyRevShort, info.RevShort)
	ctx.Set(KeyBranch, info.Branch)
	ctx.Set(KeyTags, tags)
	ctx.Set(KeyEnv, EnvMap(environ))
	ctx.Set(KeyExtra, extra)
	return ctx
}

// EnvMap converts "NAME=value" entries into a map. Entries are split at the
// first '='; entries without a name are skipped. Later duplicates win.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			continue
		}
		env[name] = value
	}
	return env
}
