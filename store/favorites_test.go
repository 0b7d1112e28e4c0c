package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteItemRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt")

	assert.False(t, s.IsItemFavorited(ctx, ids[0], "u@x.com"))

	_, err := s.AddToFavorites(ctx, ids[0], "u@x.com")
	require.NoError(t, err)
	assert.True(t, s.IsItemFavorited(ctx, ids[0], "u@x.com"))
	assert.False(t, s.IsItemFavorited(ctx, ids[0], "v@x.com"))

	n, err := s.RemoveFromFavorites(ctx, ids[0], "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.False(t, s.IsItemFavorited(ctx, ids[0], "u@x.com"))

	n, err = s.RemoveFromFavorites(ctx, ids[0], "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestAddToFavoritesRejects(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt")
	_, err := s.AddToFavorites(ctx, ids[0], "u@x.com")
	require.NoError(t, err)

	_, err = s.AddToFavorites(ctx, ids[0], "u@x.com")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = s.AddToFavorites(ctx, 999, "u@x.com")
	assert.ErrorIs(t, err, ErrInvalidReference)

	assert.Equal(t, 1, countRows(t, s, "favorites"))
}

func TestListFavoriteItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt", "jeans", "boots")
	for _, id := range []int64{ids[2], ids[0]} {
		_, err := s.AddToFavorites(ctx, id, "u@x.com")
		require.NoError(t, err)
	}
	_, err := s.AddToFavorites(ctx, ids[1], "v@x.com")
	require.NoError(t, err)

	items, err := s.ListFavoriteItems(ctx, "u@x.com")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "boots", items[0].Category)
	assert.Equal(t, "shirt", items[1].Category)

	items, err = s.ListFavoriteItems(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFavoriteOutfits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	ids := insertClothing(t, s, "shirt", "jeans")
	summer, err := s.CreateOutfit(ctx, "summer", "light", ids)
	require.NoError(t, err)
	winter, err := s.CreateOutfit(ctx, "winter", "warm", ids[:1])
	require.NoError(t, err)

	_, err = s.AddFavoriteOutfit(ctx, winter, "u@x.com")
	require.NoError(t, err)
	clock = clock.Add(time.Hour)
	_, err = s.AddFavoriteOutfit(ctx, summer, "u@x.com")
	require.NoError(t, err)

	_, err = s.AddFavoriteOutfit(ctx, summer, "u@x.com")
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = s.AddFavoriteOutfit(ctx, 999, "u@x.com")
	assert.ErrorIs(t, err, ErrInvalidReference)

	assert.True(t, s.IsOutfitFavorited(ctx, summer, "u@x.com"))
	assert.False(t, s.IsOutfitFavorited(ctx, summer, "v@x.com"))

	favorites, err := s.ListFavoriteOutfits(ctx, "u@x.com")
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	assert.Equal(t, winter, favorites[0].Outfit.ID)
	assert.True(t, favorites[0].FavoritedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Len(t, favorites[0].Outfit.ClothingItems, 1)

	assert.Equal(t, summer, favorites[1].Outfit.ID)
	assert.True(t, favorites[1].FavoritedAt.Equal(time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)))
	assert.Len(t, favorites[1].Outfit.ClothingItems, 2)

	n, err := s.RemoveFavoriteOutfit(ctx, winter, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	favorites, err = s.ListFavoriteOutfits(ctx, "u@x.com")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}
