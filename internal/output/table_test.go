package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("NAME", "TARGET").
		Row("version-go", "version.go").
		Row("version", "VERSION").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "TARGET")
	assert.Contains(t, out, "version-go")
	assert.Contains(t, out, "VERSION")

	lines := strings.Split(out, "\n")
	nameLine := -1
	for i, l := range lines {
		if strings.Contains(l, "version-go") {
			nameLine = i
		}
	}
	assert.Greater(t, nameLine, 0, "rows follow the header")
}

func TestTable_Empty(t *testing.T) {
	out := NewTable("NAME").String()
	assert.Contains(t, out, "NAME")
}
