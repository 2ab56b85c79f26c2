package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamly-backend/pkg/models"
)

func ids(videos []models.Video) []uint {
	out := make([]uint, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func TestForVideo_SameCategoryFirst(t *testing.T) {
	t.Parallel()

	videos := []models.Video{
		{ID: 1, Category: "Music"},
		{ID: 2, Category: "Music"},
		{ID: 3, Category: "Sports"},
	}

	result, ok := ForVideo(videos, 1, 2)
	require.True(t, ok)
	assert.Equal(t, []uint{2, 3}, ids(result))
}

func TestForVideo_ExcludesTarget(t *testing.T) {
	t.Parallel()

	videos := []models.Video{
		{ID: 1, Category: "Music"},
		{ID: 2, Category: "Music"},
	}

	result, ok := ForVideo(videos, 2, 10)
	require.True(t, ok)
	assert.Equal(t, []uint{1}, ids(result))
}

func TestForVideo_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	videos := []models.Video{
		{ID: 1, Category: "Music"},
		{ID: 2, Category: "Music"},
		{ID: 3, Category: "Music"},
		{ID: 4, Category: "Sports"},
	}

	result, ok := ForVideo(videos, 1, 1)
	require.True(t, ok)
	assert.Equal(t, []uint{2}, ids(result))
}

func TestForVideo_UnknownTarget(t *testing.T) {
	t.Parallel()

	videos := []models.Video{{ID: 1, Category: "Music"}}

	_, ok := ForVideo(videos, 99, 5)
	assert.False(t, ok)
}

func TestForVideo_EmptySet(t *testing.T) {
	t.Parallel()

	_, ok := ForVideo(nil, 1, 5)
	assert.False(t, ok)
}
