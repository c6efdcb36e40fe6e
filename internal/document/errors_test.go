package document

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceNotFoundError(t *testing.T) {
	err := &ReferenceNotFoundError{Label: "arm_pivot", Context: "joint of body arm"}
	assert.Equal(t, `reference "arm_pivot" not found (while compiling joint of body arm)`, err.Error())

	wrapped := fmt.Errorf("compile: %w", err)
	var refErr *ReferenceNotFoundError
	require.True(t, errors.As(wrapped, &refErr))
	assert.Equal(t, "arm_pivot", refErr.Label)
}

func TestMalformedTopologyError(t *testing.T) {
	withAddr := &MalformedTopologyError{Address: "C4", Detail: "field key has no value in the same row"}
	assert.Equal(t, "malformed topology at C4: field key has no value in the same row", withAddr.Error())

	noAddr := &MalformedTopologyError{Detail: "two roots"}
	assert.Equal(t, "malformed topology: two roots", noAddr.Error())

	wrapped := fmt.Errorf("extract: %w", withAddr)
	var topoErr *MalformedTopologyError
	require.True(t, errors.As(wrapped, &topoErr))
	assert.Equal(t, "C4", topoErr.Address)
}
