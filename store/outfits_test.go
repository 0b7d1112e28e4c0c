package store

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-service/models"
)

// insertClothing adds one item per category and returns their ids in order
func insertClothing(t *testing.T, s *Store, categories ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(categories))
	for _, category := range categories {
		id, err := s.InsertClothingItem(context.Background(), "black", category, "/img/"+category+".jpg")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestCreateOutfitKeepsItemOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt", "jeans", "boots")
	order := []int64{ids[2], ids[0], ids[1]}

	outfitID, err := s.CreateOutfit(ctx, "autumn", "walk", order)
	require.NoError(t, err)

	outfit, err := s.GetOutfit(ctx, outfitID)
	require.NoError(t, err)
	require.NotNil(t, outfit)
	assert.Equal(t, "autumn", outfit.Season)
	assert.Equal(t, "walk", outfit.Description)
	assert.Equal(t, order, lo.Map(outfit.ClothingItems, func(c models.ClothingItem, _ int) int64 { return c.ID }))
	assert.Equal(t, "black boots", outfit.ClothingItems[0].String())
}

func TestCreateOutfitIsAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt", "jeans")

	_, err := s.CreateOutfit(ctx, "summer", "broken", []int64{ids[0], ids[1], 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	assert.Equal(t, 0, countRows(t, s, "outfits"))
	assert.Equal(t, 0, countRows(t, s, "outfit_items"))
}

func TestCreateOutfitRequiresItems(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateOutfit(context.Background(), "summer", "empty", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, countRows(t, s, "outfits"))
}

func TestCreateOutfitStoresRepeatedItemOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt", "jeans")

	outfitID, err := s.CreateOutfit(ctx, "spring", "twice", []int64{ids[0], ids[1], ids[0]})
	require.NoError(t, err)

	outfit, err := s.GetOutfit(ctx, outfitID)
	require.NoError(t, err)
	assert.Len(t, outfit.ClothingItems, 2)
}

func TestListAllOutfits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	outfits, err := s.ListAllOutfits(ctx)
	require.NoError(t, err)
	assert.Empty(t, outfits)

	ids := insertClothing(t, s, "shirt", "jeans", "scarf")
	first, err := s.CreateOutfit(ctx, "summer", "light", []int64{ids[0], ids[1]})
	require.NoError(t, err)
	second, err := s.CreateOutfit(ctx, "winter", "warm", []int64{ids[2]})
	require.NoError(t, err)

	outfits, err = s.ListAllOutfits(ctx)
	require.NoError(t, err)
	require.Len(t, outfits, 2)
	assert.Equal(t, first, outfits[0].ID)
	assert.Len(t, outfits[0].ClothingItems, 2)
	assert.Equal(t, second, outfits[1].ID)
	require.Len(t, outfits[1].ClothingItems, 1)
	assert.Equal(t, "scarf", outfits[1].ClothingItems[0].Category)
}

func TestDeletingClothingRemovesItFromOutfits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt", "jeans")
	outfitID, err := s.CreateOutfit(ctx, "summer", "light", ids)
	require.NoError(t, err)
	_, err = s.AddToFavorites(ctx, ids[0], "u@x.com")
	require.NoError(t, err)

	n, err := s.DeleteClothingItem(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	outfit, err := s.GetOutfit(ctx, outfitID)
	require.NoError(t, err)
	require.Len(t, outfit.ClothingItems, 1)
	assert.Equal(t, ids[1], outfit.ClothingItems[0].ID)
	assert.False(t, s.IsItemFavorited(ctx, ids[0], "u@x.com"))
}

func TestDeleteOutfit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := insertClothing(t, s, "shirt")
	outfitID, err := s.CreateOutfit(ctx, "summer", "light", ids)
	require.NoError(t, err)
	_, err = s.AddFavoriteOutfit(ctx, outfitID, "u@x.com")
	require.NoError(t, err)

	n, err := s.DeleteOutfit(ctx, outfitID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	missing, err := s.GetOutfit(ctx, outfitID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, 0, countRows(t, s, "outfit_items"))
	assert.Equal(t, 0, countRows(t, s, "favorite_outfits"))
	assert.Equal(t, 1, countRows(t, s, "clothing"), "clothing survives its outfit")
}
