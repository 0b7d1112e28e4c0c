package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClassify(t *testing.T) {
	constraint := func(code sqlite3.ErrNoExtended) error {
		return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: code}
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unique", constraint(sqlite3.ErrConstraintUnique), ErrDuplicate},
		{"primary key", constraint(sqlite3.ErrConstraintPrimaryKey), ErrDuplicate},
		{"foreign key", constraint(sqlite3.ErrConstraintForeignKey), ErrInvalidReference},
		{"check", constraint(sqlite3.ErrConstraintCheck), ErrInvalidInput},
		{"not null", constraint(sqlite3.ErrConstraintNotNull), ErrInvalidInput},
		{"wrapped", fmt.Errorf("clothing item 3: %w", constraint(sqlite3.ErrConstraintForeignKey)), ErrInvalidReference},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrFailed},
		{"other", errors.New("disk on fire"), ErrFailed},
		{"sentinel", fmt.Errorf("%w: empty", ErrInvalidInput), ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestFailuresAreLoggedAndCounted(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	s := newTestStore(t, func(cfg *Config) {
		cfg.Logger = zap.New(core)
		cfg.Metrics = metrics
	})
	ctx := context.Background()

	_, err = s.InsertUser(ctx, "alice", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = s.InsertUser(ctx, "alice", "a@x.com", "pw")
	require.ErrorIs(t, err, ErrDuplicate)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("insert_user", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("insert_user", "duplicate")))

	duplicates := logs.FilterMessage("Duplicate key").All()
	require.Len(t, duplicates, 1)
	assert.Equal(t, "store", duplicates[0].LoggerName)
	assert.Equal(t, "insert_user", duplicates[0].ContextMap()["operation"])

	_, err = s.AddToFavorites(ctx, 999, "a@x.com")
	require.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, 1, logs.FilterMessage("Store operation failed").Len())
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	require.Error(t, err)
}
