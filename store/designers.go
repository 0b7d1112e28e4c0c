package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"wardrobe-service/models"
)

const designerColumns = "id, name, email, password, unique_id"

// InsertDesigner registers a designer. A taken email or unique id yields ErrDuplicate.
func (s *Store) InsertDesigner(ctx context.Context, name, email, password, uniqueID string) (id int64, err error) {
	defer s.track("insert_designer", time.Now(), &err)

	hash, err := s.hashPassword(password)
	if err != nil {
		return 0, s.fail("insert_designer", err, zap.String("email", email))
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO designers (name, email, password, unique_id) VALUES (?, ?, ?, ?)",
		name, email, hash, uniqueID)
	if err != nil {
		return 0, s.fail("insert_designer", err, zap.String("email", email), zap.String("unique_id", uniqueID))
	}

	id, err = insertedID(res)
	if err != nil {
		return 0, s.fail("insert_designer", err)
	}
	return id, nil
}

// ValidateDesigner reports whether email and password belong to a designer.
// Lookup errors are logged and reported as false.
func (s *Store) ValidateDesigner(ctx context.Context, email, password string) bool {
	var err error
	defer s.track("validate_designer", time.Now(), &err)

	var hash string
	err = s.db.GetContext(ctx, &hash, "SELECT password FROM designers WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return false
	}
	if err != nil {
		err = s.fail("validate_designer", err, zap.String("email", email))
		return false
	}
	return passwordMatches(hash, password)
}

// GetDesignerByEmail returns the designer with the email, or nil
func (s *Store) GetDesignerByEmail(ctx context.Context, email string) (d *models.Designer, err error) {
	defer s.track("get_designer_by_email", time.Now(), &err)

	d, err = s.getDesigner(ctx, "SELECT "+designerColumns+" FROM designers WHERE email = ?", email)
	if err != nil {
		return nil, s.fail("get_designer_by_email", err, zap.String("email", email))
	}
	return d, nil
}

// GetDesignerByID returns the designer with the id, or nil
func (s *Store) GetDesignerByID(ctx context.Context, id int64) (d *models.Designer, err error) {
	defer s.track("get_designer_by_id", time.Now(), &err)

	d, err = s.getDesigner(ctx, "SELECT "+designerColumns+" FROM designers WHERE id = ?", id)
	if err != nil {
		return nil, s.fail("get_designer_by_id", err, zap.Int64("designer_id", id))
	}
	return d, nil
}

func (s *Store) getDesigner(ctx context.Context, query string, arg any) (*models.Designer, error) {
	var designer models.Designer
	err := s.db.GetContext(ctx, &designer, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &designer, nil
}

// UpdateDesigner edits the profile fields, keeping the password
func (s *Store) UpdateDesigner(ctx context.Context, id int64, name, email, uniqueID string) (n int64, err error) {
	defer s.track("update_designer", time.Now(), &err)

	res, err := s.db.ExecContext(ctx,
		"UPDATE designers SET name = ?, email = ?, unique_id = ? WHERE id = ?",
		name, email, uniqueID, id)
	if err != nil {
		return 0, s.fail("update_designer", err, zap.Int64("designer_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("update_designer", err)
	}
	return n, nil
}

// UpdateDesignerWithPassword edits the profile fields and replaces the password
func (s *Store) UpdateDesignerWithPassword(ctx context.Context, id int64, name, email, uniqueID, newPassword string) (n int64, err error) {
	defer s.track("update_designer_with_password", time.Now(), &err)

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return 0, s.fail("update_designer_with_password", err, zap.Int64("designer_id", id))
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE designers SET name = ?, email = ?, unique_id = ?, password = ? WHERE id = ?",
		name, email, uniqueID, hash, id)
	if err != nil {
		return 0, s.fail("update_designer_with_password", err, zap.Int64("designer_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("update_designer_with_password", err)
	}
	return n, nil
}

// DeleteDesigner removes a designer; their designs go with them
func (s *Store) DeleteDesigner(ctx context.Context, id int64) (n int64, err error) {
	defer s.track("delete_designer", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, "DELETE FROM designers WHERE id = ?", id)
	if err != nil {
		return 0, s.fail("delete_designer", err, zap.Int64("designer_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("delete_designer", err)
	}
	return n, nil
}

// ListDesigners returns every designer ordered by id
func (s *Store) ListDesigners(ctx context.Context) (designers []models.Designer, err error) {
	defer s.track("list_designers", time.Now(), &err)

	designers = []models.Designer{}
	if err = s.db.SelectContext(ctx, &designers, "SELECT "+designerColumns+" FROM designers ORDER BY id"); err != nil {
		return nil, s.fail("list_designers", err)
	}
	return designers, nil
}
