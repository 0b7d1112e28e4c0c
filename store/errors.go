package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Repository calls never return raw driver errors. They log the cause and
// return one of these sentinels instead; callers match with errors.Is.
var (
	// ErrDuplicate reports a unique or primary key violation (email, unique id, favourite).
	ErrDuplicate = errors.New("store: duplicate key")
	// ErrInvalidReference reports a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("store: referenced row does not exist")
	// ErrInvalidInput reports values rejected by a check or not-null constraint.
	ErrInvalidInput = errors.New("store: invalid input")
	// ErrFailed covers every other storage failure.
	ErrFailed = errors.New("store: operation failed")
)

// classify maps a driver error onto the store's sentinel errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{ErrDuplicate, ErrInvalidReference, ErrInvalidInput, ErrFailed} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ErrFailed
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrDuplicate
	case sqlite3.ErrConstraintForeignKey:
		return ErrInvalidReference
	case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
		return ErrInvalidInput
	}
	return ErrFailed
}

// outcome is the metrics label for an error returned by a repository call.
func outcome(err error) string {
	switch classify(err) {
	case nil:
		return "ok"
	case ErrDuplicate:
		return "duplicate"
	case ErrInvalidReference:
		return "invalid_reference"
	case ErrInvalidInput:
		return "invalid_input"
	default:
		return "failed"
	}
}
