package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wardrobe-service/models"
)

// errNoSuchUser aborts an account deletion whose user row is already gone
var errNoSuchUser = errors.New("user not found")

// InsertUser registers a user and returns its id. A taken email yields ErrDuplicate.
func (s *Store) InsertUser(ctx context.Context, username, email, password string) (id int64, err error) {
	defer s.track("insert_user", time.Now(), &err)

	hash, err := s.hashPassword(password)
	if err != nil {
		return 0, s.fail("insert_user", err, zap.String("email", email))
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password) VALUES (?, ?, ?)",
		username, email, hash)
	if err != nil {
		return 0, s.fail("insert_user", err, zap.String("email", email))
	}

	id, err = insertedID(res)
	if err != nil {
		return 0, s.fail("insert_user", err)
	}
	return id, nil
}

// ValidateUser reports whether email and password belong to a user.
// Lookup errors are logged and reported as false.
func (s *Store) ValidateUser(ctx context.Context, email, password string) bool {
	var err error
	defer s.track("validate_user", time.Now(), &err)

	var hash string
	err = s.db.GetContext(ctx, &hash, "SELECT password FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return false
	}
	if err != nil {
		err = s.fail("validate_user", err, zap.String("email", email))
		return false
	}
	return passwordMatches(hash, password)
}

// UpdateUsername renames the user with the given email
func (s *Store) UpdateUsername(ctx context.Context, email, newUsername string) (n int64, err error) {
	defer s.track("update_username", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, "UPDATE users SET username = ? WHERE email = ?", newUsername, email)
	if err != nil {
		return 0, s.fail("update_username", err, zap.String("email", email))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("update_username", err)
	}
	return n, nil
}

// GetUserByEmail returns the user with the exact email, or nil when none exists
func (s *Store) GetUserByEmail(ctx context.Context, email string) (u *models.User, err error) {
	defer s.track("get_user_by_email", time.Now(), &err)

	var user models.User
	err = s.db.GetContext(ctx, &user, "SELECT id, username, email FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail("get_user_by_email", err, zap.String("email", email))
	}
	return &user, nil
}

// ListUsers returns every user ordered by id
func (s *Store) ListUsers(ctx context.Context) (users []models.User, err error) {
	defer s.track("list_users", time.Now(), &err)

	users = []models.User{}
	if err = s.db.SelectContext(ctx, &users, "SELECT id, username, email FROM users ORDER BY id"); err != nil {
		return nil, s.fail("list_users", err)
	}
	return users, nil
}

// DeleteUser removes the user row only; favourites are left untouched.
// Use DeleteUserCompletely for account deletion.
func (s *Store) DeleteUser(ctx context.Context, id int64) (n int64, err error) {
	defer s.track("delete_user", time.Now(), &err)

	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return 0, s.fail("delete_user", err, zap.Int64("user_id", id))
	}
	if n, err = rowsAffected(res); err != nil {
		return 0, s.fail("delete_user", err)
	}
	return n, nil
}

// normalizeEmail trims surrounding whitespace and lowercases
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUserIDByEmail looks a user up ignoring case and surrounding whitespace
// on both the stored and the given email.
func (s *Store) GetUserIDByEmail(ctx context.Context, email string) (int64, bool) {
	var err error
	defer s.track("get_user_id_by_email", time.Now(), &err)

	var id int64
	err = s.db.GetContext(ctx, &id,
		"SELECT id FROM users WHERE LOWER(TRIM(email)) = ? ORDER BY id LIMIT 1",
		normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		s.log.Debug("No user found", zap.String("email", normalizeEmail(email)))
		return 0, false
	}
	if err != nil {
		err = s.fail("get_user_id_by_email", err, zap.String("email", email))
		return 0, false
	}
	return id, true
}

// ChangePassword replaces the password when oldPassword matches the current
// one. Any mismatch or failure reports false.
func (s *Store) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) bool {
	var err error
	defer s.track("change_password", time.Now(), &err)

	changed := false
	err = s.withTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var current string
		err := tx.GetContext(ctx, &current, "SELECT password FROM users WHERE email = ?", email)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if !passwordMatches(current, oldPassword) {
			return nil
		}

		hash, err := s.hashPassword(newPassword)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "UPDATE users SET password = ? WHERE email = ?", hash, email)
		if err != nil {
			return err
		}
		n, err := rowsAffected(res)
		if err != nil {
			return err
		}
		changed = n == 1
		return nil
	})
	if err != nil {
		err = s.fail("change_password", err, zap.String("email", email))
		return false
	}
	return changed
}

// DeleteUserCompletely deletes the user's favourites, favourite outfits and
// the user row in one transaction. It reports true only when exactly one user
// row was removed; otherwise nothing is deleted.
func (s *Store) DeleteUserCompletely(ctx context.Context, userID int64, userEmail string) bool {
	var err error
	defer s.track("delete_user_completely", time.Now(), &err)

	err = s.withTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM favorites WHERE user_email = ?", userEmail); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM favorite_outfits WHERE user_email = ?", userEmail); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
		if err != nil {
			return err
		}
		n, err := rowsAffected(res)
		if err != nil {
			return err
		}
		if n != 1 {
			return errNoSuchUser
		}
		return nil
	})
	if errors.Is(err, errNoSuchUser) {
		err = nil
		s.log.Info("Account deletion found no user", zap.Int64("user_id", userID))
		return false
	}
	if err != nil {
		err = s.fail("delete_user_completely", err, zap.Int64("user_id", userID))
		return false
	}
	return true
}
