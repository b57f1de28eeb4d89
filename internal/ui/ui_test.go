package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestTableAlignsRunes(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	Table(&buf, []string{"ID", "GLYPH"}, [][]string{
		{"aws-waf", "◈"},
		{"x", "▣"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "  ID       GLYPH", lines[0])
	assert.Equal(t, "  aws-waf  ◈", lines[2])
	assert.Equal(t, "  x        ▣", lines[3])
}

func TestTableSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"A"}, nil)
	assert.Empty(t, buf.String())
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "*", Flag(true, "*"))
	assert.Empty(t, Flag(false, "*"))
}
