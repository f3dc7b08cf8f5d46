package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldorsen/bondladder/prompt"
)

func TestRenderStyle_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", prompt.ShortStyle.String())
	assert.Equal(t, "verbose", prompt.VerboseStyle.String())
}

func TestExportDecision_ZeroValueDeclines(t *testing.T) {
	t.Parallel()

	var d prompt.ExportDecision
	assert.False(t, d.Export)
	assert.Empty(t, d.Dir)
}
