package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the id resolves to nothing. Distinct from a storage
	// fault: absence is an expected lookup outcome.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate key")

	// ErrForeignKey means a referenced record does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")
)

// TranslateError maps gorm errors onto the repository error set. Requires
// the connection to be opened with gorm.Config{TranslateError: true} so
// driver-specific constraint violations arrive as gorm sentinel errors.
// Anything unrecognized passes through as a storage fault.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	default:
		return err
	}
}
