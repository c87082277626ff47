package staging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "dev-1", "pendingSpeakerData")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "dev-1", "pendingSpeakerData", `{"userType":"speaker"}`))

	v, err := s.Get(ctx, "dev-1", "pendingSpeakerData")
	require.NoError(t, err)
	assert.Equal(t, `{"userType":"speaker"}`, v)

	// Scoped by device.
	_, err = s.Get(ctx, "dev-2", "pendingSpeakerData")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "dev-1", "pendingSpeakerData"))
	_, err = s.Get(ctx, "dev-1", "pendingSpeakerData")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, "dev-1", "pendingSpeakerData"))
}

func TestStagedKey(t *testing.T) {
	assert.Equal(t, "staged:dev-1:pendingUserData", stagedKey("dev-1", "pendingUserData"))
}
