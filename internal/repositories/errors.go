package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when a write duplicates a unique email, username or slug.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation is returned when a write references a parent that does not exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// translateError maps driver and gorm errors onto the repository error taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKeyViolation, err)
	}

	// Drivers without error translation still report constraint failures in the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "duplicate key value"):
		return fmt.Errorf("%w: %v", ErrUniqueViolation, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"), strings.Contains(msg, "violates foreign key constraint"):
		return fmt.Errorf("%w: %v", ErrForeignKeyViolation, err)
	}
	return err
}
