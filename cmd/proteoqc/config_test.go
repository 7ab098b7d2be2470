package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOption(t *testing.T) {
	opt, err := findOption("export.confidence")
	require.NoError(t, err)
	assert.Equal(t, "export.confidence", opt.key)
	require.NotNil(t, opt.validate)
	assert.NoError(t, opt.validate("high,medium"))
	assert.NoError(t, opt.validate("low"))
	assert.Error(t, opt.validate("extreme"))
	assert.Error(t, opt.validate(""))

	opt, err = findOption("input.sheet")
	require.NoError(t, err)
	assert.Nil(t, opt.validate)
}

func TestFindOption_UnknownKey(t *testing.T) {
	_, err := findOption("output.format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export.confidence")
	assert.Contains(t, err.Error(), "input.sheet")
}

func TestRunConfigSet_RejectsInvalid(t *testing.T) {
	assert.Error(t, runConfigSet("output.format", "csv"))
	assert.Error(t, runConfigSet("export.confidence", "extreme"))
}
