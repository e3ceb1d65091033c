package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("wrote version.go.tmpl")

	assert.Contains(t, got, "✔")
	assert.True(t, strings.HasSuffix(got, " wrote version.go.tmpl"))
}

func TestBannerShortWidthPadding(t *testing.T) {
	long := strings.Repeat("x", bannerWidth)

	line := Banner(long)

	assert.True(t, strings.HasPrefix(line, "=="))
	assert.True(t, strings.HasSuffix(line, "=="))
}
