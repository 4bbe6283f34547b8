package visitors

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExistingIDIsHonored(t *testing.T) {
	id := Resolve("abc-123")

	assert.Equal(t, "abc-123", id.ID)
	assert.False(t, id.New)
}

func TestResolve_EmptyIDMintsNewIdentity(t *testing.T) {
	id := Resolve("")

	require.NotEmpty(t, id.ID)
	assert.True(t, id.New)

	// A minted identity must be a valid UUID.
	_, err := uuid.Parse(id.ID)
	assert.NoError(t, err)
}

func TestResolve_MintedIdentitiesAreUnique(t *testing.T) {
	first := Resolve("")
	second := Resolve("")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestIdentityTTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, IdentityTTL)
}
