package vars

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/gitrev/internal/gitinfo"
)

func testInfo() gitinfo.RepositoryInfo {
	return gitinfo.RepositoryInfo{
		Revision: "0123456789abcdef0123456789abcdef01234567",
		RevShort: "0123456",
		Branch:   "main",
		Tags:     []string{"v1.2.0", "stable"},
	}
}

func TestBuildKeyOrder(t *testing.T) {
	ctx := Build(testInfo(), nil, nil)

	assert.Equal(t, []string{"revision", "rev_short", "branch", "tags", "env", "extra"}, ctx.Keys())
	assert.Equal(t, 6, ctx.Len())
}

func TestBuildRepositoryFields(t *testing.T) {
	ctx := Build(testInfo(), nil, nil)

	rev, ok := ctx.Get(KeyRevision)
	require.True(t, ok)
	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", rev)

	short, _ := ctx.Get(KeyRevShort)
	assert.Equal(t, "0123456", short)

	branch, _ := ctx.Get(KeyBranch)
	assert.Equal(t, "main", branch)

	tags, _ := ctx.Get(KeyTags)
	assert.Equal(t, []string{"v1.2.0", "stable"}, tags)
}

func TestBuildNoCollisions(t *testing.T) {
	extra := map[string]any{
		"revision": "user-revision",
		"branch":   "user-branch",
		"tags":     []any{"x"},
		"env":      "user-env",
	}
	environ := []string{"revision=env-revision", "branch=env-branch", "HOME=/home/builder"}

	ctx := Build(testInfo(), extra, environ)

	rev, _ := ctx.Get(KeyRevision)
	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", rev)
	branch, _ := ctx.Get(KeyBranch)
	assert.Equal(t, "main", branch)

	env, _ := ctx.Get(KeyEnv)
	assert.Equal(t, "env-revision", env.(map[string]string)["revision"])

	got, _ := ctx.Get(KeyExtra)
	assert.Equal(t, extra, got)
	assert.Equal(t, "user-revision", got.(map[string]any)["revision"])
}

func TestBuildDefaults(t *testing.T) {
	ctx := Build(gitinfo.RepositoryInfo{Revision: "abc"}, nil, nil)

	tags, _ := ctx.Get(KeyTags)
	assert.Equal(t, []string{}, tags)

	extra, _ := ctx.Get(KeyExtra)
	assert.Equal(t, map[string]any{}, extra)

	env, _ := ctx.Get(KeyEnv)
	assert.Equal(t, map[string]string{}, env)
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{
		"HOME=/root",
		"EMPTY=",
		"WITH_EQUALS=a=b=c",
		"=C:=C:\\",
		"NOVALUE",
		"HOME=/override",
	})

	assert.Equal(t, map[string]string{
		"HOME":        "/override",
		"EMPTY":       "",
		"WITH_EQUALS": "a=b=c",
		"NOVALUE":     "",
	}, env)
}

func TestContextSetKeepsPosition(t *testing.T) {
	ctx := NewContext()
	ctx.Set("a", 1)
	ctx.Set("b", 2)
	ctx.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, ctx.Keys())
	v, _ := ctx.Get("a")
	assert.Equal(t, 3, v)
}

func TestContextMapIsCopy(t *testing.T) {
	ctx := NewContext()
	ctx.Set("a", "x")

	m := ctx.Map()
	m["b"] = "y"

	_, ok := ctx.Get("b")
	assert.False(t, ok)
}

func TestContextMarshalJSON(t *testing.T) {
	extra, err := ParseExtraVars(`{"build": {"number": 42}, "name": "gitrev"}`)
	require.NoError(t, err)
	ctx := Build(testInfo(), extra, []string{"CI=true"})

	data, err := json.Marshal(ctx)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"revision": "0123456789abcdef0123456789abcdef01234567",
		"rev_short": "0123456",
		"branch": "main",
		"tags": ["v1.2.0", "stable"],
		"env": {"CI": "true"},
		"extra": {"build": {"number": 42}, "name": "gitrev"}
	}`, string(data))

	// keys appear in insertion order
	s := string(data)
	assert.Less(t, strings.Index(s, `"revision"`), strings.Index(s, `"rev_short"`))
	assert.Less(t, strings.Index(s, `"tags"`), strings.Index(s, `"env"`))
	assert.Less(t, strings.Index(s, `"env"`), strings.Index(s, `"extra"`))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 6)
}
