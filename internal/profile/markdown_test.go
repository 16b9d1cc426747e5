package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownIncludesSections(t *testing.T) {
	b, ok := FindByName(Seed(), "Don Grier")
	if !assert.True(t, ok) {
		return
	}
	md := b.Markdown()
	assert.Contains(t, md, "# Don Grier\n")
	assert.Contains(t, md, "**Full Stack Engineer**")
	assert.Contains(t, md, "## About")
	assert.Contains(t, md, "- **TypeScript**: ")
	assert.Contains(t, md, "[Public Advocates](https://www.publicadvocatessocialsociety.org/)")
	assert.Contains(t, md, "## Links")
}

func TestMarkdownSkipsEmptySections(t *testing.T) {
	md := Builder{Name: "Solo", Bio: "Just me."}.Markdown()
	assert.Equal(t, "# Solo\n\n## About\n\nJust me.\n", md)
}
