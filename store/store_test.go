package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestStore opens a store on a fresh database file
func newTestStore(t *testing.T, opts ...func(*Config)) *Store {
	t.Helper()

	cfg := Config{
		Path:       filepath.Join(t.TempDir(), "wardrobe.db"),
		BcryptCost: bcrypt.MinCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// countRows counts the rows of table
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestOpenValidatesConfig(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Config{})
	require.Error(t, err)

	_, err = Open(ctx, Config{Path: filepath.Join(t.TempDir(), "x.db"), BcryptCost: 99})
	require.Error(t, err)
}

func TestOpenCreatesSchema(t *testing.T) {
	s := newTestStore(t)

	for _, table := range dropOrder {
		if table == migrationsTable {
			continue
		}
		assert.Equal(t, 0, countRows(t, s, table), table)
	}
	assert.Equal(t, 1, countRows(t, s, migrationsTable))
	require.NoError(t, s.HealthCheck(context.Background()))
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.InsertUser(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Initialize(ctx))

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.db")
	ctx := context.Background()

	s, err := Open(ctx, Config{Path: path, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	_, err = s.InsertClothingItem(ctx, "red", "shirt", "/img/1.jpg")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, Config{Path: path, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	defer s.Close()

	items, err := s.ListAllClothingItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMigratePreservesDataAndDeduplicatesFavorites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx, 1))
	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	clothingID, err := s.InsertClothingItem(ctx, "blue", "jeans", "/img/2.jpg")
	require.NoError(t, err)

	// Version 1 has no uniqueness on favourites
	_, err = s.AddToFavorites(ctx, clothingID, "u@x.com")
	require.NoError(t, err)
	_, err = s.AddToFavorites(ctx, clothingID, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, countRows(t, s, "favorites"))

	require.NoError(t, s.Migrate(ctx, 2))
	assert.Equal(t, 1, countRows(t, s, "favorites"))
	assert.True(t, s.IsItemFavorited(ctx, clothingID, "u@x.com"))

	_, err = s.AddToFavorites(ctx, clothingID, "u@x.com")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRebuildDropsEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	designerID, err := s.InsertDesigner(ctx, "Dana", "d@x.com", "secret", "D-1")
	require.NoError(t, err)
	_, err = s.AddDesign(ctx, testDesign(designerID, "coat"))
	require.NoError(t, err)

	require.NoError(t, s.Rebuild(ctx))

	assert.Equal(t, 0, countRows(t, s, "designers"))
	assert.Equal(t, 0, countRows(t, s, "designs"))

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)

	// Schema is usable again
	_, err = s.InsertDesigner(ctx, "Dana", "d@x.com", "secret", "D-1")
	require.NoError(t, err)
}

func TestBackup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertUser(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, s.Backup(ctx, target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	copied, err := Open(ctx, Config{Path: target, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	defer copied.Close()
	assert.True(t, copied.ValidateUser(ctx, "a@x.com", "pw1"))

	require.Error(t, s.Backup(ctx, target), "existing target must not be overwritten")
	require.Error(t, s.Backup(ctx, ""))
}
