package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceSet(t *testing.T) {
	levels, err := confidenceSet("high,medium")
	require.NoError(t, err)
	assert.Equal(t, []string{"High", "Medium"}, levels)

	levels, err = confidenceSet(" High , LOW ")
	require.NoError(t, err)
	assert.Equal(t, []string{"High", "Low"}, levels)

	levels, err = confidenceSet("medium")
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium"}, levels)
}

func TestConfidenceSet_Invalid(t *testing.T) {
	_, err := confidenceSet("extreme")
	assert.Error(t, err)

	_, err = confidenceSet("")
	assert.Error(t, err)

	_, err = confidenceSet(",,")
	assert.Error(t, err)
}
