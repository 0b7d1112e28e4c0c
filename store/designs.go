package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"wardrobe-service/models"
)

const designColumns = "id, title, description, price, category, image_file, designer_id"

// AddDesign stores a design for d.DesignerID and returns its id. d.ID is ignored.
// A missing designer yields ErrInvalidReference, a negative price ErrInvalidInput.
func (s *Store) AddDesign(ctx context.Context, d models.Design) (id int64, err error) {
	defer s.track("add_design", time.Now(), &err)

	if d.Price < 0 || math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
		return 0, s.fail("add_design", fmt.Errorf("%w: price %v", ErrInvalidInput, d.Price))
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO designs (title, description, price, category, image_file, designer_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.Title, d.Description, d.Price, d.Category, d.ImageFile, d.DesignerID)
	if err != nil {
		return 0, s.fail("add_design", err, zap.Int64("designer_id", d.DesignerID))
	}

	id, err = insertedID(res)
	if err != nil {
		return 0, s.fail("add_design", err)
	}
	return id, nil
}

// GetDesignsByDesigner lists the designs of one designer
func (s *Store) GetDesignsByDesigner(ctx context.Context, designerID int64) (designs []models.Design, err error) {
	defer s.track("get_designs_by_designer", time.Now(), &err)

	designs = []models.Design{}
	err = s.db.SelectContext(ctx, &designs,
		"SELECT "+designColumns+" FROM designs WHERE designer_id = ? ORDER BY id", designerID)
	if err != nil {
		return nil, s.fail("get_designs_by_designer", err, zap.Int64("designer_id", designerID))
	}
	return designs, nil
}

// ListAllDesigns lists every design across designers
func (s *Store) ListAllDesigns(ctx context.Context) (designs []models.Design, err error) {
	defer s.track("list_all_designs", time.Now(), &err)

	designs = []models.Design{}
	if err = s.db.SelectContext(ctx, &designs, "SELECT "+designColumns+" FROM designs ORDER BY id"); err != nil {
		return nil, s.fail("list_all_designs", err)
	}
	return designs, nil
}

// DeleteDesign removes one design
func (s *Store) DeleteDesign(ctx context.Context, id int64) (n int64, err error) {
	defer s.track("delete_design", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, "DELETE FROM designs WHERE id = ?", id)
	if err != nil {
		return 0, s.fail("delete_design", err, zap.Int64("design_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("delete_design", err)
	}
	return n, nil
}
