package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNewSessionID(t *testing.T) {
	// When: two session IDs are generated
	first := GenerateNewSessionID()
	second := GenerateNewSessionID()

	// Then: both are valid UUIDs and differ
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
