package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Render(t *testing.T) {
	bar := NewProgressBar(20)

	assert.Equal(t, 20, bar.Width())

	empty := bar.Render(0)
	full := bar.Render(100)
	assert.NotEqual(t, empty, full)

	// Fill grows monotonically with the percentage.
	half := bar.Render(50)
	assert.Greater(t, strings.Count(full, "█"), strings.Count(half, "█"))
}

func TestProgressBar_RenderClampsInput(t *testing.T) {
	bar := NewProgressBar(20)

	assert.Equal(t, bar.Render(0), bar.Render(-10))
	assert.Equal(t, bar.Render(100), bar.Render(250))
}
