package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.String(), "Build Tag:    "+Version)
	assert.Equal(t, Version, Short())
	assert.Contains(t, info.Variants, "snippets")
	assert.Contains(t, info.Languages, "de")
	assert.Contains(t, info.String(), "Languages:    en, de, es")
}
