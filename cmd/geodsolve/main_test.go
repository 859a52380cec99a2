package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckMode(t *testing.T) {
	assert.NoError(t, checkMode(false, false, false, false))
	assert.NoError(t, checkMode(true, false, false, false))
	assert.NoError(t, checkMode(false, true, false, false))
	assert.NoError(t, checkMode(false, false, true, false))
	assert.NoError(t, checkMode(false, false, false, true))

	// Arc mode only makes sense for the direct problem.
	assert.Error(t, checkMode(true, false, false, true))
	assert.Error(t, checkMode(false, true, false, true))
	assert.Error(t, checkMode(false, false, true, true))
}
