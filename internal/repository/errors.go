package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate reports a unique constraint violation on any engine.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnknownOwner reports a row that references a user that does not exist.
	ErrUnknownOwner = errors.New("owner does not exist")
)

// translateError folds engine-specific constraint failures into the
// package sentinels. Other errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUnknownOwner
	}

	// dialects without an error translator
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "duplicate entry"):
		return ErrDuplicate
	case strings.Contains(msg, "foreign key constraint"):
		return ErrUnknownOwner
	}
	return err
}
