package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Project created")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Project created")
}

func TestFormatWarning(t *testing.T) {
	out := FormatWarning("boot/sega.s missing")
	assert.Contains(t, out, "!")
	assert.Contains(t, out, "boot/sega.s missing")
}

func TestFormatFailure(t *testing.T) {
	out := FormatFailure("build failed")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "build failed")
}

func TestStyles(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
	assert.True(t, StyleBold.GetBold())
	assert.True(t, StyleDim.GetFaint())
	assert.Equal(t, ColorYellow, StyleWarning.GetForeground())
	assert.True(t, StyleFailure.GetBold())
}
