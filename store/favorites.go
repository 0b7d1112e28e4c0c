package store

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"wardrobe-service/models"
)

// favoriteOutfitRow is an outfit joined with its favourite timestamp (epoch millis)
type favoriteOutfitRow struct {
	models.Outfit
	FavoritedAt int64 `db:"favorited_at"`
}

// AddToFavorites marks a clothing item as a favourite of userEmail.
// Adding the same pair twice yields ErrDuplicate; an unknown item ErrInvalidReference.
func (s *Store) AddToFavorites(ctx context.Context, clothingID int64, userEmail string) (id int64, err error) {
	defer s.track("add_to_favorites", time.Now(), &err)

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO favorites (clothing_id, user_email, favorited_at) VALUES (?, ?, ?)",
		clothingID, userEmail, s.now().UnixMilli())
	if err != nil {
		return 0, s.fail("add_to_favorites", err, zap.Int64("clothing_id", clothingID), zap.String("email", userEmail))
	}

	id, err = insertedID(res)
	if err != nil {
		return 0, s.fail("add_to_favorites", err)
	}
	return id, nil
}

// RemoveFromFavorites unmarks a favourite clothing item
func (s *Store) RemoveFromFavorites(ctx context.Context, clothingID int64, userEmail string) (n int64, err error) {
	defer s.track("remove_from_favorites", time.Now(), &err)

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE clothing_id = ? AND user_email = ?", clothingID, userEmail)
	if err != nil {
		return 0, s.fail("remove_from_favorites", err, zap.Int64("clothing_id", clothingID))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("remove_from_favorites", err)
	}
	return n, nil
}

// IsItemFavorited reports whether userEmail has favourited the item.
// Query errors are logged and reported as false.
func (s *Store) IsItemFavorited(ctx context.Context, clothingID int64, userEmail string) bool {
	var err error
	defer s.track("is_item_favorited", time.Now(), &err)

	var count int
	err = s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM favorites WHERE clothing_id = ? AND user_email = ?", clothingID, userEmail)
	if err != nil {
		err = s.fail("is_item_favorited", err, zap.Int64("clothing_id", clothingID))
		return false
	}
	return count > 0
}

// ListFavoriteItems lists the favourite clothing items of userEmail, oldest first
func (s *Store) ListFavoriteItems(ctx context.Context, userEmail string) (items []models.ClothingItem, err error) {
	defer s.track("list_favorite_items", time.Now(), &err)

	items = []models.ClothingItem{}
	err = s.db.SelectContext(ctx, &items, `
		SELECT c.id, c.color, c.category, c.image_path
		FROM clothing c
		JOIN favorites f ON c.id = f.clothing_id
		WHERE f.user_email = ?
		ORDER BY f.favorited_at, f.id`, userEmail)
	if err != nil {
		return nil, s.fail("list_favorite_items", err, zap.String("email", userEmail))
	}
	return items, nil
}

// AddFavoriteOutfit marks an outfit as a favourite of userEmail
func (s *Store) AddFavoriteOutfit(ctx context.Context, outfitID int64, userEmail string) (id int64, err error) {
	defer s.track("add_favorite_outfit", time.Now(), &err)

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO favorite_outfits (outfit_id, user_email, favorited_at) VALUES (?, ?, ?)",
		outfitID, userEmail, s.now().UnixMilli())
	if err != nil {
		return 0, s.fail("add_favorite_outfit", err, zap.Int64("outfit_id", outfitID), zap.String("email", userEmail))
	}

	id, err = insertedID(res)
	if err != nil {
		return 0, s.fail("add_favorite_outfit", err)
	}
	return id, nil
}

// RemoveFavoriteOutfit unmarks a favourite outfit
func (s *Store) RemoveFavoriteOutfit(ctx context.Context, outfitID int64, userEmail string) (n int64, err error) {
	defer s.track("remove_favorite_outfit", time.Now(), &err)

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM favorite_outfits WHERE outfit_id = ? AND user_email = ?", outfitID, userEmail)
	if err != nil {
		return 0, s.fail("remove_favorite_outfit", err, zap.Int64("outfit_id", outfitID))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("remove_favorite_outfit", err)
	}
	return n, nil
}

// IsOutfitFavorited reports whether userEmail has favourited the outfit
func (s *Store) IsOutfitFavorited(ctx context.Context, outfitID int64, userEmail string) bool {
	var err error
	defer s.track("is_outfit_favorited", time.Now(), &err)

	var count int
	err = s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM favorite_outfits WHERE outfit_id = ? AND user_email = ?", outfitID, userEmail)
	if err != nil {
		err = s.fail("is_outfit_favorited", err, zap.Int64("outfit_id", outfitID))
		return false
	}
	return count > 0
}

// ListFavoriteOutfits lists the favourite outfits of userEmail with their
// items and the time each was favourited, oldest first.
func (s *Store) ListFavoriteOutfits(ctx context.Context, userEmail string) (favorites []models.FavoriteOutfit, err error) {
	defer s.track("list_favorite_outfits", time.Now(), &err)

	var rows []favoriteOutfitRow
	err = s.db.SelectContext(ctx, &rows, `
		SELECT o.id, o.season, o.description, f.favorited_at
		FROM outfits o
		JOIN favorite_outfits f ON o.id = f.outfit_id
		WHERE f.user_email = ?
		ORDER BY f.favorited_at, f.id`, userEmail)
	if err != nil {
		return nil, s.fail("list_favorite_outfits", err, zap.String("email", userEmail))
	}

	outfits := lo.Map(rows, func(r favoriteOutfitRow, _ int) models.Outfit { return r.Outfit })
	if err = s.attachItems(ctx, outfits); err != nil {
		return nil, s.fail("list_favorite_outfits", err, zap.String("email", userEmail))
	}

	favorites = make([]models.FavoriteOutfit, len(rows))
	for i, r := range rows {
		favorites[i] = models.FavoriteOutfit{
			Outfit:      outfits[i],
			FavoritedAt: time.UnixMilli(r.FavoritedAt),
		}
	}
	return favorites, nil
}
