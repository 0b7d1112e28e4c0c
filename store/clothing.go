package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wardrobe-service/models"
)

// InsertClothingItem adds an item to the pool and returns its id
func (s *Store) InsertClothingItem(ctx context.Context, color, category, imagePath string) (id int64, err error) {
	defer s.track("insert_clothing_item", time.Now(), &err)

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO clothing (color, category, image_path) VALUES (?, ?, ?)",
		color, category, imagePath)
	if err != nil {
		return 0, s.fail("insert_clothing_item", err, zap.String("category", category))
	}

	id, err = insertedID(res)
	if err != nil {
		return 0, s.fail("insert_clothing_item", err)
	}
	return id, nil
}

// ListAllClothingItems lists the whole item pool
func (s *Store) ListAllClothingItems(ctx context.Context) (items []models.ClothingItem, err error) {
	defer s.track("list_all_clothing_items", time.Now(), &err)

	items = []models.ClothingItem{}
	err = s.db.SelectContext(ctx, &items, "SELECT id, color, category, image_path FROM clothing ORDER BY id")
	if err != nil {
		return nil, s.fail("list_all_clothing_items", err)
	}
	return items, nil
}

// DeleteClothingItem removes an item. Its outfit memberships and favourites
// are removed with it.
func (s *Store) DeleteClothingItem(ctx context.Context, id int64) (n int64, err error) {
	defer s.track("delete_clothing_item", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, "DELETE FROM clothing WHERE id = ?", id)
	if err != nil {
		return 0, s.fail("delete_clothing_item", err, zap.Int64("clothing_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("delete_clothing_item", err)
	}
	return n, nil
}
