package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub-dev/campushub/internal/domain"
	internal_errors "github.com/campushub-dev/campushub/internal/errors"
)

func TestCreateAndGetCommunity(t *testing.T) {
	created := mustCreateCommunity(t, domain.Academic)
	assert.NotZero(t, created.Id)
	assert.Empty(t, created.ModeratorIds)

	got, err := storage.GetCommunity(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, domain.Academic, got.Type)
	assert.Equal(t, created.JoinCode, got.JoinCode)
}

func TestGetCommunity_NotFound(t *testing.T) {
	_, err := storage.GetCommunity(999999)
	require.Error(t, err)
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, 404, e.StatusCode)
}

func TestSetModerators(t *testing.T) {
	community := mustCreateCommunity(t, domain.Chillout)

	updated, err := storage.SetModerators(community.Id, []domain.UserId{50, 51})
	require.NoError(t, err)
	assert.Equal(t, domain.VoterIds{50, 51}, updated.ModeratorIds)
	assert.True(t, updated.IsModerator(50))
	assert.False(t, updated.IsModerator(99))

	// replacement, not append
	updated, err = storage.SetModerators(community.Id, []domain.UserId{52})
	require.NoError(t, err)
	assert.Equal(t, domain.VoterIds{52}, updated.ModeratorIds)

	_, err = storage.SetModerators(999999, []domain.UserId{1})
	require.Error(t, err)
}
