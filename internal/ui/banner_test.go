package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/builderhub/builderhub/cli/internal/ui/components"
)

func TestSplitLinesSplitsOnNewlines(t *testing.T) {
	lines := splitLines("a\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestRenderBannerIncludesSubtitleAndNoOSC(t *testing.T) {
	out := RenderBanner(120)
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Builder Discovery Platform")
	assert.Contains(t, clean, "██████╗")
	assert.True(t, strings.Contains(clean, "─"))
}

func TestRenderBannerCompactOnNarrowTerminal(t *testing.T) {
	clean := components.SanitizeText(RenderBanner(60))
	assert.Contains(t, clean, "BUILDERHUB")
	assert.NotContains(t, clean, "██")
}

func TestRenderBannerUnknownWidthUsesArt(t *testing.T) {
	assert.Contains(t, RenderBanner(0), "╚═╝")
}
