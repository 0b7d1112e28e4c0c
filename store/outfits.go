package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"wardrobe-service/models"
)

// outfitItemRow is one clothing item joined to the outfit it belongs to
type outfitItemRow struct {
	OutfitID int64 `db:"outfit_id"`
	models.ClothingItem
}

// CreateOutfit stores an outfit and its items in one transaction and returns
// the outfit id. Either everything is written or nothing is: an unknown
// clothing id yields ErrInvalidReference and no outfit row remains.
// Repeated ids are stored once.
func (s *Store) CreateOutfit(ctx context.Context, season, description string, clothingIDs []int64) (outfitID int64, err error) {
	defer s.track("create_outfit", time.Now(), &err)

	if len(clothingIDs) == 0 {
		return 0, s.fail("create_outfit", fmt.Errorf("%w: outfit without clothing items", ErrInvalidInput))
	}
	ids := lo.Uniq(clothingIDs)

	err = s.withTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "INSERT INTO outfits (season, description) VALUES (?, ?)", season, description)
		if err != nil {
			return err
		}
		id, err := insertedID(res)
		if err != nil {
			return err
		}

		stmt, err := tx.PreparexContext(ctx, "INSERT INTO outfit_items (outfit_id, clothing_id) VALUES (?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, clothingID := range ids {
			if _, err := stmt.ExecContext(ctx, id, clothingID); err != nil {
				return fmt.Errorf("clothing item %d: %w", clothingID, err)
			}
		}

		outfitID = id
		return nil
	})
	if err != nil {
		return 0, s.fail("create_outfit", err, zap.Int64s("clothing_ids", ids))
	}

	s.log.Debug("Outfit created", zap.Int64("outfit_id", outfitID), zap.Int("items", len(ids)))
	return outfitID, nil
}

// GetOutfit returns one outfit with its items, or nil
func (s *Store) GetOutfit(ctx context.Context, id int64) (o *models.Outfit, err error) {
	defer s.track("get_outfit", time.Now(), &err)

	var outfit models.Outfit
	err = s.db.GetContext(ctx, &outfit, "SELECT id, season, description FROM outfits WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail("get_outfit", err, zap.Int64("outfit_id", id))
	}

	outfits := []models.Outfit{outfit}
	if err = s.attachItems(ctx, outfits); err != nil {
		return nil, s.fail("get_outfit", err, zap.Int64("outfit_id", id))
	}
	return &outfits[0], nil
}

// ListAllOutfits lists every outfit with its clothing items
func (s *Store) ListAllOutfits(ctx context.Context) (outfits []models.Outfit, err error) {
	defer s.track("list_all_outfits", time.Now(), &err)

	outfits = []models.Outfit{}
	if err = s.db.SelectContext(ctx, &outfits, "SELECT id, season, description FROM outfits ORDER BY id"); err != nil {
		return nil, s.fail("list_all_outfits", err)
	}
	if err = s.attachItems(ctx, outfits); err != nil {
		return nil, s.fail("list_all_outfits", err)
	}
	return outfits, nil
}

// DeleteOutfit removes an outfit with its item links and favourites
func (s *Store) DeleteOutfit(ctx context.Context, id int64) (n int64, err error) {
	defer s.track("delete_outfit", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, "DELETE FROM outfits WHERE id = ?", id)
	if err != nil {
		return 0, s.fail("delete_outfit", err, zap.Int64("outfit_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("delete_outfit", err)
	}
	return n, nil
}

// attachItems fills ClothingItems of every outfit with a single IN query.
// Items keep the order in which they were linked.
func (s *Store) attachItems(ctx context.Context, outfits []models.Outfit) error {
	if len(outfits) == 0 {
		return nil
	}

	ids := lo.Map(outfits, func(o models.Outfit, _ int) int64 { return o.ID })
	query, args, err := sqlx.In(`
		SELECT oi.outfit_id, c.id, c.color, c.category, c.image_path
		FROM outfit_items oi
		JOIN clothing c ON c.id = oi.clothing_id
		WHERE oi.outfit_id IN (?)
		ORDER BY oi.outfit_id, oi.rowid`, ids)
	if err != nil {
		return err
	}

	var rows []outfitItemRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return err
	}

	byOutfit := lo.GroupBy(rows, func(r outfitItemRow) int64 { return r.OutfitID })
	for i := range outfits {
		outfits[i].ClothingItems = lo.Map(byOutfit[outfits[i].ID], func(r outfitItemRow, _ int) models.ClothingItem {
			return r.ClothingItem
		})
	}
	return nil
}
