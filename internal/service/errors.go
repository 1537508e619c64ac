package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrReadOnly         = errors.New("account is read-only")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// fromStore translates driver errors into the service taxonomy. Repository
// calls never leak raw gorm errors past this point.
func fromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// guardWrite rejects read-only principals before any write is attempted.
func guardWrite(p model.Principal) error {
	if p.ReadOnly {
		return ErrReadOnly
	}
	return nil
}
